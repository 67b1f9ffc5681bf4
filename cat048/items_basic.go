package cat048

import (
	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/prim"
)

// DataSourceIdentifier is Data Item I048/010.
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

// TimeOfDay is Data Item I048/140: 24-bit count of 1/128 s.
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

// MeasuredPosition is Data Item I048/040: polar position relative to the
// radar site.
type MeasuredPosition struct {
	RhoNM    float64
	ThetaDeg float64
}

func (m *MeasuredPosition) Decode(r *bitio.Reader) error {
	rho, err := r.ReadUint(16)
	if err != nil {
		return err
	}
	theta, err := r.ReadUint(16)
	if err != nil {
		return err
	}
	m.RhoNM = prim.ScaleToFloat(int64(rho), prim.OpMultiply, 1.0/256.0)
	m.ThetaDeg = prim.ScaleToFloat(int64(theta), prim.OpMultiply, 360.0/65536.0)

	return nil
}

func (m *MeasuredPosition) Encode(w *bitio.Writer) error {
	rho := prim.ScaleToRaw(m.RhoNM, prim.OpMultiply, 1.0/256.0)
	theta := prim.ScaleToRaw(m.ThetaDeg, prim.OpMultiply, 360.0/65536.0)
	w.WriteUint(uint64(rho)&0xFFFF, 16)
	w.WriteUint(uint64(theta)&0xFFFF, 16)

	return nil
}

// Mode3ACode is Data Item I048/070.
type Mode3ACode struct {
	Validated   bool
	Garbled     bool
	FromReply   bool
	Reply       uint16 // 12-bit octal-coded reply
}

func (m *Mode3ACode) Decode(r *bitio.Reader) error {
	v, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	g, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	l, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	if _, err := r.ReadUint(1); err != nil { // reserved
		return err
	}
	reply, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	m.Validated = v == 0
	m.Garbled = g != 0
	m.FromReply = l == 0
	m.Reply = uint16(reply)

	return nil
}

func (m *Mode3ACode) Encode(w *bitio.Writer) error {
	w.WriteUint(boolBit(!m.Validated), 1)
	w.WriteUint(boolBit(m.Garbled), 1)
	w.WriteUint(boolBit(!m.FromReply), 1)
	w.WriteUint(0, 1)
	w.WriteUint(uint64(m.Reply), 12)

	return nil
}

// FlightLevel is Data Item I048/090: FL = raw / 4.
type FlightLevel struct {
	Validated bool
	Garbled   bool
	Level     float64
}

func (f *FlightLevel) Decode(r *bitio.Reader) error {
	v, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	g, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	raw, err := r.ReadInt(14)
	if err != nil {
		return err
	}
	f.Validated = v == 0
	f.Garbled = g != 0
	f.Level = prim.ScaleToFloat(raw, prim.OpDivide, 4.0)

	return nil
}

func (f *FlightLevel) Encode(w *bitio.Writer) error {
	w.WriteUint(boolBit(!f.Validated), 1)
	w.WriteUint(boolBit(f.Garbled), 1)
	raw := prim.ScaleToRaw(f.Level, prim.OpDivide, 4.0)
	w.WriteInt(raw, 14)

	return nil
}

// AircraftAddress is Data Item I048/220: 24-bit ICAO address.
type AircraftAddress struct {
	Address uint32
}

func (a *AircraftAddress) Decode(r *bitio.Reader) error {
	v, err := r.ReadUint(24)
	if err != nil {
		return err
	}
	a.Address = uint32(v)

	return nil
}

func (a *AircraftAddress) Encode(w *bitio.Writer) error {
	w.WriteUint(uint64(a.Address), 24)

	return nil
}

// AircraftIdentification is Data Item I048/240: seven 6-bit IA5
// characters plus a trailing zero pad.
type AircraftIdentification struct {
	Identification string
}

func (a *AircraftIdentification) Decode(r *bitio.Reader) error {
	s, err := prim.ReadIA5String(r, 7)
	if err != nil {
		return err
	}
	a.Identification = s

	return nil
}

func (a *AircraftIdentification) Encode(w *bitio.Writer) error {
	prim.WriteIA5String(w, a.Identification, 7)

	return nil
}

// TrackNumber is Data Item I048/161.
type TrackNumber struct {
	Number uint16 // 12-bit
}

func (t *TrackNumber) Decode(r *bitio.Reader) error {
	if _, err := r.ReadUint(4); err != nil { // reserved
		return err
	}
	v, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	t.Number = uint16(v)

	return nil
}

func (t *TrackNumber) Encode(w *bitio.Writer) error {
	w.WriteUint(0, 4)
	w.WriteUint(uint64(t.Number), 12)

	return nil
}

// CalculatedPosition is Data Item I048/042: Cartesian position relative
// to the radar site.
type CalculatedPosition struct {
	XNM float64
	YNM float64
}

func (c *CalculatedPosition) Decode(r *bitio.Reader) error {
	x, err := r.ReadInt(16)
	if err != nil {
		return err
	}
	y, err := r.ReadInt(16)
	if err != nil {
		return err
	}
	c.XNM = prim.ScaleToFloat(x, prim.OpMultiply, 1.0/128.0)
	c.YNM = prim.ScaleToFloat(y, prim.OpMultiply, 1.0/128.0)

	return nil
}

func (c *CalculatedPosition) Encode(w *bitio.Writer) error {
	x := prim.ScaleToRaw(c.XNM, prim.OpMultiply, 1.0/128.0)
	y := prim.ScaleToRaw(c.YNM, prim.OpMultiply, 1.0/128.0)
	w.WriteInt(x, 16)
	w.WriteInt(y, 16)

	return nil
}

// CalculatedTrackVelocity is Data Item I048/200.
type CalculatedTrackVelocity struct {
	GroundSpeedNMPerSec float64
	HeadingDeg          float64
}

func (c *CalculatedTrackVelocity) Decode(r *bitio.Reader) error {
	gs, err := r.ReadUint(16)
	if err != nil {
		return err
	}
	hdg, err := r.ReadUint(16)
	if err != nil {
		return err
	}
	c.GroundSpeedNMPerSec = prim.ScaleToFloat(int64(gs), prim.OpMultiply, 1.0/16384.0)
	c.HeadingDeg = prim.ScaleToFloat(int64(hdg), prim.OpMultiply, 360.0/65536.0)

	return nil
}

func (c *CalculatedTrackVelocity) Encode(w *bitio.Writer) error {
	gs := prim.ScaleToRaw(c.GroundSpeedNMPerSec, prim.OpMultiply, 1.0/16384.0)
	hdg := prim.ScaleToRaw(c.HeadingDeg, prim.OpMultiply, 360.0/65536.0)
	w.WriteUint(uint64(gs)&0xFFFF, 16)
	w.WriteUint(uint64(hdg)&0xFFFF, 16)

	return nil
}

// TrackQuality is Data Item I048/210: four one-byte standard-deviation
// fields, each independently scaled.
type TrackQuality struct {
	HorizontalStddev  float64
	VerticalStddev    float64
	GroundSpeedStddev float64
	HeadingStddev     float64
}

func (t *TrackQuality) Decode(r *bitio.Reader) error {
	h, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	v, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	gs, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	hdg, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	t.HorizontalStddev = prim.ScaleToFloat(int64(h), prim.OpMultiply, 128.0)
	t.VerticalStddev = prim.ScaleToFloat(int64(v), prim.OpMultiply, 128.0)
	t.GroundSpeedStddev = prim.ScaleToFloat(int64(gs), prim.OpMultiply, 1.0/16384.0)
	t.HeadingStddev = prim.ScaleToFloat(int64(hdg), prim.OpMultiply, 360.0/4096.0)

	return nil
}

func (t *TrackQuality) Encode(w *bitio.Writer) error {
	h := prim.ScaleToRaw(t.HorizontalStddev, prim.OpMultiply, 128.0)
	v := prim.ScaleToRaw(t.VerticalStddev, prim.OpMultiply, 128.0)
	gs := prim.ScaleToRaw(t.GroundSpeedStddev, prim.OpMultiply, 1.0/16384.0)
	hdg := prim.ScaleToRaw(t.HeadingStddev, prim.OpMultiply, 360.0/4096.0)
	w.WriteUint(uint64(h)&0xFF, 8)
	w.WriteUint(uint64(v)&0xFF, 8)
	w.WriteUint(uint64(gs)&0xFF, 8)
	w.WriteUint(uint64(hdg)&0xFF, 8)

	return nil
}

// Mode3AConfidence is Data Item I048/080, and the shape reused for
// Mode-1/Mode-2 confidence (FRN 25/26): a 4-bit spare prefix over a
// 12-bit per-digit confidence bitmap.
type Mode3AConfidence struct {
	Confidence uint16
}

func (m *Mode3AConfidence) Decode(r *bitio.Reader) error {
	if _, err := r.ReadUint(4); err != nil {
		return err
	}
	v, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	m.Confidence = uint16(v)

	return nil
}

func (m *Mode3AConfidence) Encode(w *bitio.Writer) error {
	w.WriteUint(0, 4)
	w.WriteUint(uint64(m.Confidence), 12)

	return nil
}

// ModeCCodeAndConfidence is Data Item I048/100: V/G flags and a 12-bit
// Mode-C code, followed by its 12-bit confidence bitmap.
type ModeCCodeAndConfidence struct {
	Validated  bool
	Garbled    bool
	Code       uint16 // 12-bit
	Confidence uint16 // 12-bit
}

func (m *ModeCCodeAndConfidence) Decode(r *bitio.Reader) error {
	v, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	g, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	if _, err := r.ReadUint(2); err != nil { // reserved
		return err
	}
	code, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	if _, err := r.ReadUint(4); err != nil { // reserved
		return err
	}
	conf, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	m.Validated = v == 0
	m.Garbled = g != 0
	m.Code = uint16(code)
	m.Confidence = uint16(conf)

	return nil
}

func (m *ModeCCodeAndConfidence) Encode(w *bitio.Writer) error {
	w.WriteUint(boolBit(!m.Validated), 1)
	w.WriteUint(boolBit(m.Garbled), 1)
	w.WriteUint(0, 2)
	w.WriteUint(uint64(m.Code), 12)
	w.WriteUint(0, 4)
	w.WriteUint(uint64(m.Confidence), 12)

	return nil
}

// HeightBy3DRadar is Data Item I048/110: feet = raw * 25.
type HeightBy3DRadar struct {
	Feet float64
}

func (h *HeightBy3DRadar) Decode(r *bitio.Reader) error {
	if _, err := r.ReadUint(2); err != nil { // reserved
		return err
	}
	raw, err := r.ReadInt(14)
	if err != nil {
		return err
	}
	h.Feet = prim.ScaleToFloat(raw, prim.OpMultiply, 25.0)

	return nil
}

func (h *HeightBy3DRadar) Encode(w *bitio.Writer) error {
	w.WriteUint(0, 2)
	raw := prim.ScaleToRaw(h.Feet, prim.OpMultiply, 25.0)
	w.WriteInt(raw, 14)

	return nil
}

// CommunicationsCapabilityFlightStatus is Data Item I048/230.
type CommunicationsCapabilityFlightStatus struct {
	COM  uint8 // 3-bit
	STAT uint8 // 3-bit
	SI   bool
	MSSC bool
	ARC  bool
	AIC  bool
	B1A  bool
	B1B  uint8 // 4-bit
}

func (c *CommunicationsCapabilityFlightStatus) Decode(r *bitio.Reader) error {
	com, err := r.ReadUint(3)
	if err != nil {
		return err
	}
	stat, err := r.ReadUint(3)
	if err != nil {
		return err
	}
	si, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	if _, err := r.ReadUint(1); err != nil { // reserved
		return err
	}
	mssc, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	arc, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	aic, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	b1a, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	b1b, err := r.ReadUint(4)
	if err != nil {
		return err
	}
	c.COM, c.STAT = uint8(com), uint8(stat)
	c.SI, c.MSSC, c.ARC, c.AIC, c.B1A = si != 0, mssc != 0, arc != 0, aic != 0, b1a != 0
	c.B1B = uint8(b1b)

	return nil
}

func (c *CommunicationsCapabilityFlightStatus) Encode(w *bitio.Writer) error {
	w.WriteUint(uint64(c.COM), 3)
	w.WriteUint(uint64(c.STAT), 3)
	w.WriteUint(boolBit(c.SI), 1)
	w.WriteUint(0, 1)
	w.WriteUint(boolBit(c.MSSC), 1)
	w.WriteUint(boolBit(c.ARC), 1)
	w.WriteUint(boolBit(c.AIC), 1)
	w.WriteUint(boolBit(c.B1A), 1)
	w.WriteUint(uint64(c.B1B), 4)

	return nil
}

// ACASResolutionAdvisory is Data Item I048/260: a fixed 7-byte MB block.
type ACASResolutionAdvisory struct {
	MB [7]byte
}

func (a *ACASResolutionAdvisory) Decode(r *bitio.Reader) error {
	for i := range a.MB {
		v, err := r.ReadUint(8)
		if err != nil {
			return err
		}
		a.MB[i] = byte(v)
	}

	return nil
}

func (a *ACASResolutionAdvisory) Encode(w *bitio.Writer) error {
	for _, b := range a.MB {
		w.WriteUint(uint64(b), 8)
	}

	return nil
}

// OctalCode is the shared 16-bit shape of Mode-1 (FRN 23) and Mode-2
// (FRN 24) codes, matching Mode3ACode's field layout.
type OctalCode struct {
	Validated bool
	Garbled   bool
	FromReply bool
	Reply     uint16 // 12-bit
}

func (o *OctalCode) Decode(r *bitio.Reader) error {
	v, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	g, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	l, err := r.ReadUint(1)
	if err != nil {
		return err
	}
	if _, err := r.ReadUint(1); err != nil {
		return err
	}
	reply, err := r.ReadUint(12)
	if err != nil {
		return err
	}
	o.Validated = v == 0
	o.Garbled = g != 0
	o.FromReply = l == 0
	o.Reply = uint16(reply)

	return nil
}

func (o *OctalCode) Encode(w *bitio.Writer) error {
	w.WriteUint(boolBit(!o.Validated), 1)
	w.WriteUint(boolBit(o.Garbled), 1)
	w.WriteUint(boolBit(!o.FromReply), 1)
	w.WriteUint(0, 1)
	w.WriteUint(uint64(o.Reply), 12)

	return nil
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}
