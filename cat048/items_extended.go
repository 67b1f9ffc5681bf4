package cat048

import (
	"fmt"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/errs"
)

// TargetReportDescriptorType is the exhaustive TYP discriminant of the
// first extent of Data Item I048/020.
type TargetReportDescriptorType uint8

const (
	TargetNoDetection          TargetReportDescriptorType = 0
	TargetSinglePSR            TargetReportDescriptorType = 1
	TargetSingleSSR            TargetReportDescriptorType = 2
	TargetSSRPlusPSR           TargetReportDescriptorType = 3
	TargetSingleModeSAllCall   TargetReportDescriptorType = 4
	TargetSingleModeSRollCall  TargetReportDescriptorType = 5
	TargetModeSAllCallPlusPSR  TargetReportDescriptorType = 6
	TargetModeSRollCallPlusPSR TargetReportDescriptorType = 7
)

// TargetReportDescriptor is extended Data Item I048/020: a mandatory
// first extent plus zero or more continuation extents whose fields this
// catalog does not individually define. Extra carries each continuation
// extent's raw 7-bit payload in order, preserving it for round-trip.
type TargetReportDescriptor struct {
	Type                  TargetReportDescriptorType
	Simulated             bool
	FromRDPChain2         bool
	SpecialIdentification bool
	FromFieldMonitor      bool
	Extra                 []byte
}

func (t *TargetReportDescriptor) Decode(r *bitio.Reader) error {
	typ, err := r.ReadUint(3)
	if err != nil {
		return err
	}
	t.Type = TargetReportDescriptorType(typ)

	sim, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	rdp, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	spi, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	rab, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	fx, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	t.Simulated = sim != 0
	t.FromRDPChain2 = rdp != 0
	t.SpecialIdentification = spi != 0
	t.FromFieldMonitor = rab != 0

	t.Extra = nil
	for fx != 0 {
		payload, err := r.ReadUint(7)
		if err != nil {
			return err
		}
		fxBit, err := r.ReadUint(1)
		if err != nil {
			return err
		}
		t.Extra = append(t.Extra, byte(payload))
		fx = fxBit
	}

	return nil
}

func (t *TargetReportDescriptor) Encode(w *bitio.Writer) error {
	w.WriteUint(uint64(t.Type), 3)
	w.WriteUint(boolBit(t.Simulated), 1)
	w.WriteUint(boolBit(t.FromRDPChain2), 1)
	w.WriteUint(boolBit(t.SpecialIdentification), 1)
	w.WriteUint(boolBit(t.FromFieldMonitor), 1)
	w.WriteUint(boolBit(len(t.Extra) > 0), 1)

	for i, b := range t.Extra {
		w.WriteUint(uint64(b)&0x7F, 7)
		w.WriteUint(boolBit(i < len(t.Extra)-1), 1)
	}

	return nil
}

// TrackStatus is extended Data Item I048/170: a mandatory first extent
// plus an optional second extent carrying TRE/GHO/SUP/TCC.
type TrackStatus struct {
	Confirmed      bool
	RADChain       uint8 // 2-bit
	LowConfidence  bool
	ManSensed      bool
	CDM            uint8 // 2-bit

	HasSecondExtent          bool
	TrackEnded               bool
	Ghost                    bool
	Suppressed               bool
	SlantRangeTransformation bool
}

func (t *TrackStatus) Decode(r *bitio.Reader) error {
	cnf, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	rad, err := r.ReadUint(2)
	if err != nil {
		return err
	}
	dou, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	mah, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	cdm, err := r.ReadUint(2)
	if err != nil {
		return err
	}
	fx1, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	t.Confirmed = cnf == 0
	t.RADChain = uint8(rad)
	t.LowConfidence = dou != 0
	t.ManSensed = mah != 0
	t.CDM = uint8(cdm)
	t.HasSecondExtent = fx1 != 0

	if !t.HasSecondExtent {
		return nil
	}

	tre, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	gho, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	sup, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	tcc, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	if _, err := r.ReadUint(3); err != nil { // reserved
		return err
	}
	fx2, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	if fx2 != 0 {
		return fmt.Errorf("cat048 I048/170: extension beyond second extent: %w", errs.ErrInvalidDiscriminant)
	}
	t.TrackEnded = tre != 0
	t.Ghost = gho != 0
	t.Suppressed = sup != 0
	t.SlantRangeTransformation = tcc != 0

	return nil
}

func (t *TrackStatus) Encode(w *bitio.Writer) error {
	w.WriteUint(boolBit(!t.Confirmed), 1)
	w.WriteUint(uint64(t.RADChain), 2)
	w.WriteUint(boolBit(t.LowConfidence), 1)
	w.WriteUint(boolBit(t.ManSensed), 1)
	w.WriteUint(uint64(t.CDM), 2)
	w.WriteUint(boolBit(t.HasSecondExtent), 1)

	if !t.HasSecondExtent {
		return nil
	}

	w.WriteUint(boolBit(t.TrackEnded), 1)
	w.WriteUint(boolBit(t.Ghost), 1)
	w.WriteUint(boolBit(t.Suppressed), 1)
	w.WriteUint(boolBit(t.SlantRangeTransformation), 1)
	w.WriteUint(0, 3)
	w.WriteUint(0, 1)

	return nil
}

// WarningErrorConditions is extended Data Item I048/030: a chain of
// 7-bit condition codes, each extent's low bit signalling continuation.
type WarningErrorConditions struct {
	Codes []uint8
}

func (we *WarningErrorConditions) Decode(r *bitio.Reader) error {
	we.Codes = nil
	for {
		code, err := r.ReadUint(7)
		if err != nil {
			return err
		}
		fx, err := r.ReadUint(1)
		if err != nil {
			return err
		}
		we.Codes = append(we.Codes, uint8(code))
		if fx == 0 {
			break
		}
	}

	return nil
}

func (we *WarningErrorConditions) Encode(w *bitio.Writer) error {
	if len(we.Codes) == 0 {
		w.WriteUint(0, 7)
		w.WriteUint(0, 1)
		return nil
	}
	for i, c := range we.Codes {
		w.WriteUint(uint64(c)&0x7F, 7)
		w.WriteUint(boolBit(i < len(we.Codes)-1), 1)
	}

	return nil
}
