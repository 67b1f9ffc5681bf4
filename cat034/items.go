package cat034

import (
	"fmt"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/errs"
	"github.com/skytrace/asterix/fspec"
	"github.com/skytrace/asterix/prim"
)

// DataSourceIdentifier is Data Item I034/010.
type DataSourceIdentifier struct {
	SAC uint8
	SIC uint8
}

func (d *DataSourceIdentifier) Decode(r *bitio.Reader) error {
	sac, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	sic, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	d.SAC, d.SIC = uint8(sac), uint8(sic)

	return nil
}

func (d *DataSourceIdentifier) Encode(w *bitio.Writer) error {
	w.WriteUint(uint64(d.SAC), 8)
	w.WriteUint(uint64(d.SIC), 8)

	return nil
}

// MessageTypeCode is the exhaustive I034/000 message-type discriminant.
type MessageTypeCode uint8

const (
	MessageTypeNorthMarker             MessageTypeCode = 1
	MessageTypeSectorCrossing          MessageTypeCode = 2
	MessageTypeGeographicalFiltering   MessageTypeCode = 3
	MessageTypeJammingStrobe           MessageTypeCode = 4
)

// MessageType is Data Item I034/000.
type MessageType struct {
	T MessageTypeCode
}

func (m *MessageType) Decode(r *bitio.Reader) error {
	v, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	switch MessageTypeCode(v) {
	case MessageTypeNorthMarker, MessageTypeSectorCrossing, MessageTypeGeographicalFiltering, MessageTypeJammingStrobe:
		m.T = MessageTypeCode(v)
	default:
		return fmt.Errorf("cat034: message type %d: %w", v, errs.ErrInvalidDiscriminant)
	}

	return nil
}

func (m *MessageType) Encode(w *bitio.Writer) error {
	w.WriteUint(uint64(m.T), 8)

	return nil
}

// TimeOfDay is Data Item I034/030 / I048/140: 24-bit count of 1/128 s.
type TimeOfDay struct {
	Seconds float64
}

func (t *TimeOfDay) Decode(r *bitio.Reader) error {
	raw, err := r.ReadUint(24)
	if err != nil {
		return err
	}
	t.Seconds = prim.ScaleToFloat(int64(raw), prim.OpDivide, 128.0)

	return nil
}

func (t *TimeOfDay) Encode(w *bitio.Writer) error {
	raw := prim.ScaleToRaw(t.Seconds, prim.OpDivide, 128.0)
	w.WriteUint(uint64(raw), 24)

	return nil
}

// SectorNumber is Data Item I034/020: one octet, degrees = raw * 360/256.
type SectorNumber struct {
	Degrees float64
}

func (s *SectorNumber) Decode(r *bitio.Reader) error {
	raw, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	s.Degrees = prim.ScaleToFloat(int64(raw), prim.OpMultiply, 360.0/256.0)

	return nil
}

func (s *SectorNumber) Encode(w *bitio.Writer) error {
	raw := prim.ScaleToRaw(s.Degrees, prim.OpMultiply, 360.0/256.0)
	w.WriteUint(uint64(raw)&0xFF, 8)

	return nil
}

// AntennaRotationSpeed is Data Item I034/041: 16-bit count of 1/128 s per
// antenna revolution.
type AntennaRotationSpeed struct {
	Seconds float64
}

func (a *AntennaRotationSpeed) Decode(r *bitio.Reader) error {
	raw, err := r.ReadUint(16)
	if err != nil {
		return err
	}
	a.Seconds = prim.ScaleToFloat(int64(raw), prim.OpDivide, 128.0)

	return nil
}

func (a *AntennaRotationSpeed) Encode(w *bitio.Writer) error {
	raw := prim.ScaleToRaw(a.Seconds, prim.OpDivide, 128.0)
	w.WriteUint(uint64(raw)&0xFFFF, 16)

	return nil
}

// COMSubfield reports the common/monitoring part of System Configuration
// and Status (I034/050 subfield 1).
type COMSubfield struct {
	NOGO    bool
	RDPC    bool
	RDPR    bool
	OVLRDP  bool
	OVLXMT  bool
	MSC     bool
	TSV     bool
}

func (c *COMSubfield) decode(r *bitio.Reader) error {
	bits := [7]*bool{&c.NOGO, &c.RDPC, &c.RDPR, &c.OVLRDP, &c.OVLXMT, &c.MSC, &c.TSV}
	for _, b := range bits {
		v, err := r.ReadUint(1)
		if err != nil {
			return err
		}
		*b = v != 0
	}
	if _, err := r.ReadUint(1); err != nil { // spare
		return err
	}

	return nil
}

func (c *COMSubfield) encode(w *bitio.Writer) {
	bits := [7]bool{c.NOGO, c.RDPC, c.RDPR, c.OVLRDP, c.OVLXMT, c.MSC, c.TSV}
	for _, b := range bits {
		w.WriteUint(boolBit(b), 1)
	}
	w.WriteUint(0, 1)
}

// RadarSubfield is the shared 8-bit shape of the PSR, SSR and MDS
// subfields of System Configuration and Status (I034/050).
type RadarSubfield struct {
	Antenna    bool
	ChannelAB  uint8
	Overload   bool
	Monitoring bool
	Reserved   uint8
}

func (s *RadarSubfield) decode(r *bitio.Reader) error {
	ant, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	ch, err := r.ReadUint(2)
	if err != nil {
		return err
	}
	ovl, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	msc, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	spare, err := r.ReadUint(3)
	if err != nil {
		return err
	}
	s.Antenna = ant != 0
	s.ChannelAB = uint8(ch)
	s.Overload = ovl != 0
	s.Monitoring = msc != 0
	s.Reserved = uint8(spare)

	return nil
}

func (s *RadarSubfield) encode(w *bitio.Writer) {
	w.WriteUint(boolBit(s.Antenna), 1)
	w.WriteUint(uint64(s.ChannelAB), 2)
	w.WriteUint(boolBit(s.Overload), 1)
	w.WriteUint(boolBit(s.Monitoring), 1)
	w.WriteUint(uint64(s.Reserved), 3)
}

// SystemConfigurationAndStatus is compound Data Item I034/050: an inner
// sub-FSPEC followed by up to four one-octet subfields in FRN order.
type SystemConfigurationAndStatus struct {
	COM *COMSubfield
	PSR *RadarSubfield
	SSR *RadarSubfield
	MDS *RadarSubfield
}

func (s *SystemConfigurationAndStatus) Decode(r *bitio.Reader) error {
	bitmap, err := fspec.Read(r)
	if err != nil {
		return fmt.Errorf("cat034 I034/050: %w", err)
	}
	if fspec.IsPresent(bitmap, 1) {
		s.COM = &COMSubfield{}
		if err := s.COM.decode(r); err != nil {
			return err
		}
	}
	if fspec.IsPresent(bitmap, 2) {
		s.PSR = &RadarSubfield{}
		if err := s.PSR.decode(r); err != nil {
			return err
		}
	}
	if fspec.IsPresent(bitmap, 3) {
		s.SSR = &RadarSubfield{}
		if err := s.SSR.decode(r); err != nil {
			return err
		}
	}
	if fspec.IsPresent(bitmap, 4) {
		s.MDS = &RadarSubfield{}
		if err := s.MDS.decode(r); err != nil {
			return err
		}
	}

	return nil
}

func (s *SystemConfigurationAndStatus) Encode(w *bitio.Writer) error {
	b := fspec.NewBuilder()
	if s.COM != nil {
		b.Set(1)
	}
	if s.PSR != nil {
		b.Set(2)
	}
	if s.SSR != nil {
		b.Set(3)
	}
	if s.MDS != nil {
		b.Set(4)
	}
	bitmap := b.Finalize()
	fspec.Write(w, bitmap)

	if s.COM != nil {
		s.COM.encode(w)
	}
	if s.PSR != nil {
		s.PSR.encode(w)
	}
	if s.SSR != nil {
		s.SSR.encode(w)
	}
	if s.MDS != nil {
		s.MDS.encode(w)
	}

	return nil
}

// ProcessingModeSubfield is the shared shape of the PSR/SSR processing
// mode subfields of System Processing Mode (I034/060).
type ProcessingModeSubfield struct {
	Reduction uint8
}

func (p *ProcessingModeSubfield) decode(r *bitio.Reader) error {
	v, err := r.ReadUint(3)
	if err != nil {
		return err
	}
	if _, err := r.ReadUint(5); err != nil { // spare
		return err
	}
	p.Reduction = uint8(v)

	return nil
}

func (p *ProcessingModeSubfield) encode(w *bitio.Writer) {
	w.WriteUint(uint64(p.Reduction), 3)
	w.WriteUint(0, 5)
}

// SystemProcessingMode is compound Data Item I034/060.
type SystemProcessingMode struct {
	PSR *ProcessingModeSubfield
	SSR *ProcessingModeSubfield
}

func (s *SystemProcessingMode) Decode(r *bitio.Reader) error {
	bitmap, err := fspec.Read(r)
	if err != nil {
		return fmt.Errorf("cat034 I034/060: %w", err)
	}
	if fspec.IsPresent(bitmap, 1) {
		s.PSR = &ProcessingModeSubfield{}
		if err := s.PSR.decode(r); err != nil {
			return err
		}
	}
	if fspec.IsPresent(bitmap, 2) {
		s.SSR = &ProcessingModeSubfield{}
		if err := s.SSR.decode(r); err != nil {
			return err
		}
	}

	return nil
}

func (s *SystemProcessingMode) Encode(w *bitio.Writer) error {
	b := fspec.NewBuilder()
	if s.PSR != nil {
		b.Set(1)
	}
	if s.SSR != nil {
		b.Set(2)
	}
	bitmap := b.Finalize()
	fspec.Write(w, bitmap)

	if s.PSR != nil {
		s.PSR.encode(w)
	}
	if s.SSR != nil {
		s.SSR.encode(w)
	}

	return nil
}

// MessageCountEntry is one (TYPE, COUNTER) pair inside MessageCountValues.
type MessageCountEntry struct {
	Type    uint8
	Counter uint16
}

// MessageCountValues is repetitive Data Item I034/070: a leading REP
// octet followed by REP two-byte entries.
type MessageCountValues struct {
	Entries []MessageCountEntry
}

func (m *MessageCountValues) Decode(r *bitio.Reader) error {
	rep, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	m.Entries = make([]MessageCountEntry, rep)
	for i := range m.Entries {
		typ, err := r.ReadUint(5)
		if err != nil {
			return err
		}
		counter, err := r.ReadUint(11)
		if err != nil {
			return err
		}
		m.Entries[i] = MessageCountEntry{Type: uint8(typ), Counter: uint16(counter)}
	}

	return nil
}

func (m *MessageCountValues) Encode(w *bitio.Writer) error {
	w.WriteUint(uint64(len(m.Entries)), 8)
	for _, e := range m.Entries {
		w.WriteUint(uint64(e.Type), 5)
		w.WriteUint(uint64(e.Counter), 11)
	}

	return nil
}

// GenericPolarWindow is Data Item I034/100: four 16-bit scaled fields
// bounding a polar surveillance window.
type GenericPolarWindow struct {
	RhoStart   float64
	RhoEnd     float64
	ThetaStart float64
	ThetaEnd   float64
}

func (g *GenericPolarWindow) Decode(r *bitio.Reader) error {
	fields := []*float64{&g.RhoStart, &g.RhoEnd, &g.ThetaStart, &g.ThetaEnd}
	for _, f := range fields {
		raw, err := r.ReadUint(16)
		if err != nil {
			return err
		}
		*f = prim.ScaleToFloat(int64(raw), prim.OpMultiply, 360.0/65536.0)
	}

	return nil
}

func (g *GenericPolarWindow) Encode(w *bitio.Writer) error {
	for _, f := range []float64{g.RhoStart, g.RhoEnd, g.ThetaStart, g.ThetaEnd} {
		raw := prim.ScaleToRaw(f, prim.OpMultiply, 360.0/65536.0)
		w.WriteUint(uint64(raw)&0xFFFF, 16)
	}

	return nil
}

// DataFilterType is the exhaustive I034/110 filter-type discriminant.
type DataFilterType uint8

const (
	DataFilterInvalid                  DataFilterType = 0
	DataFilterWeatherData              DataFilterType = 1
	DataFilterJammingStrobe            DataFilterType = 2
	DataFilterPSRData                  DataFilterType = 3
	DataFilterSSRModeSData             DataFilterType = 4
	DataFilterSSRModeSPlusPSR          DataFilterType = 5
	DataFilterEnhancedSurveillance     DataFilterType = 6
	DataFilterPSRPlusEnhanced          DataFilterType = 7
	DataFilterPSRPlusEnhancedNoModeS   DataFilterType = 8
	DataFilterPSRPlusEnhancedPlusModeS DataFilterType = 9
)

// DataFilter is Data Item I034/110: a single enum octet.
type DataFilter struct {
	Type DataFilterType
}

func (d *DataFilter) Decode(r *bitio.Reader) error {
	v, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	if v > uint64(DataFilterPSRPlusEnhancedPlusModeS) {
		return fmt.Errorf("cat034 I034/110: filter type %d: %w", v, errs.ErrInvalidDiscriminant)
	}
	d.Type = DataFilterType(v)

	return nil
}

func (d *DataFilter) Encode(w *bitio.Writer) error {
	w.WriteUint(uint64(d.Type), 8)

	return nil
}

// Position3DOfDataSource is Data Item I034/120: radar site height and
// WGS-84 latitude/longitude.
type Position3DOfDataSource struct {
	HeightFeet float64
	LatDegrees float64
	LonDegrees float64
}

func (p *Position3DOfDataSource) Decode(r *bitio.Reader) error {
	h, err := r.ReadInt(16)
	if err != nil {
		return err
	}
	lat, err := r.ReadInt(24)
	if err != nil {
		return err
	}
	lon, err := r.ReadInt(24)
	if err != nil {
		return err
	}
	p.HeightFeet = prim.ScaleToFloat(h, prim.OpMultiply, 1.0)
	p.LatDegrees = prim.ScaleToFloat(lat, prim.OpMultiply, 180.0/8388608.0)
	p.LonDegrees = prim.ScaleToFloat(lon, prim.OpMultiply, 180.0/8388608.0)

	return nil
}

func (p *Position3DOfDataSource) Encode(w *bitio.Writer) error {
	h := prim.ScaleToRaw(p.HeightFeet, prim.OpMultiply, 1.0)
	lat := prim.ScaleToRaw(p.LatDegrees, prim.OpMultiply, 180.0/8388608.0)
	lon := prim.ScaleToRaw(p.LonDegrees, prim.OpMultiply, 180.0/8388608.0)
	w.WriteInt(h, 16)
	w.WriteInt(lat, 24)
	w.WriteInt(lon, 24)

	return nil
}

// CollimationError is Data Item I034/090: range and azimuth bias terms.
type CollimationError struct {
	RangeErrorNM    float64
	AzimuthErrorDeg float64
}

func (c *CollimationError) Decode(r *bitio.Reader) error {
	rng, err := r.ReadInt(8)
	if err != nil {
		return err
	}
	az, err := r.ReadInt(8)
	if err != nil {
		return err
	}
	c.RangeErrorNM = prim.ScaleToFloat(rng, prim.OpMultiply, 1.0/128.0)
	c.AzimuthErrorDeg = prim.ScaleToFloat(az, prim.OpMultiply, 360.0/256.0)

	return nil
}

func (c *CollimationError) Encode(w *bitio.Writer) error {
	rng := prim.ScaleToRaw(c.RangeErrorNM, prim.OpMultiply, 1.0/128.0)
	az := prim.ScaleToRaw(c.AzimuthErrorDeg, prim.OpMultiply, 360.0/256.0)
	w.WriteInt(rng, 8)
	w.WriteInt(az, 8)

	return nil
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}
