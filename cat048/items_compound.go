package cat048

import (
	"fmt"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/fspec"
	"github.com/skytrace/asterix/prim"
)

// RadarPlotCharacteristics is compound Data Item I048/130: an inner
// sub-FSPEC followed by up to seven independent one-octet subfields.
type RadarPlotCharacteristics struct {
	SRLDeg *float64 // Sigma Range, 360/2^13 degrees per LSB
	SRR    *uint8   // Sigma Azimuth, raw octet
	SAM    *int8    // Sigma Amplitude, dBm
	PRLDeg *float64 // Primary plot runlength, 360/2^13 degrees per LSB
	PAM    *uint8   // Primary plot amplitude, dBm
	RPDNM  *float64 // Range difference, 1/256 NM per LSB
	APDDeg *float64 // Azimuth difference, 360/2^14 degrees per LSB
}

func (r *RadarPlotCharacteristics) Decode(rd *bitio.Reader) error {
	bitmap, err := fspec.Read(rd)
	if err != nil {
		return fmt.Errorf("cat048 I048/130: %w", err)
	}

	if fspec.IsPresent(bitmap, 1) {
		v, err := rd.ReadUint(8)
		if err != nil {
			return err
		}
		f := prim.ScaleToFloat(int64(v), prim.OpMultiply, 360.0/8192.0)
		r.SRLDeg = &f
	}
	if fspec.IsPresent(bitmap, 2) {
		v, err := rd.ReadUint(8)
		if err != nil {
			return err
		}
		u := uint8(v)
		r.SRR = &u
	}
	if fspec.IsPresent(bitmap, 3) {
		v, err := rd.ReadInt(8)
		if err != nil {
			return err
		}
		s := int8(v)
		r.SAM = &s
	}
	if fspec.IsPresent(bitmap, 4) {
		v, err := rd.ReadUint(8)
		if err != nil {
			return err
		}
		f := prim.ScaleToFloat(int64(v), prim.OpMultiply, 360.0/8192.0)
		r.PRLDeg = &f
	}
	if fspec.IsPresent(bitmap, 5) {
		v, err := rd.ReadUint(8)
		if err != nil {
			return err
		}
		u := uint8(v)
		r.PAM = &u
	}
	if fspec.IsPresent(bitmap, 6) {
		v, err := rd.ReadUint(8)
		if err != nil {
			return err
		}
		f := prim.ScaleToFloat(int64(v), prim.OpMultiply, 1.0/256.0)
		r.RPDNM = &f
	}
	if fspec.IsPresent(bitmap, 7) {
		v, err := rd.ReadUint(8)
		if err != nil {
			return err
		}
		f := prim.ScaleToFloat(int64(v), prim.OpMultiply, 360.0/16384.0)
		r.APDDeg = &f
	}

	return nil
}

func (r *RadarPlotCharacteristics) Encode(w *bitio.Writer) error {
	b := fspec.NewBuilder()
	for frn, present := range map[int]bool{
		1: r.SRLDeg != nil, 2: r.SRR != nil, 3: r.SAM != nil, 4: r.PRLDeg != nil,
		5: r.PAM != nil, 6: r.RPDNM != nil, 7: r.APDDeg != nil,
	} {
		if present {
			b.Set(frn)
		}
	}
	bitmap := b.Finalize()
	fspec.Write(w, bitmap)

	if r.SRLDeg != nil {
		raw := prim.ScaleToRaw(*r.SRLDeg, prim.OpMultiply, 360.0/8192.0)
		w.WriteUint(uint64(raw)&0xFF, 8)
	}
	if r.SRR != nil {
		w.WriteUint(uint64(*r.SRR), 8)
	}
	if r.SAM != nil {
		w.WriteInt(int64(*r.SAM), 8)
	}
	if r.PRLDeg != nil {
		raw := prim.ScaleToRaw(*r.PRLDeg, prim.OpMultiply, 360.0/8192.0)
		w.WriteUint(uint64(raw)&0xFF, 8)
	}
	if r.PAM != nil {
		w.WriteUint(uint64(*r.PAM), 8)
	}
	if r.RPDNM != nil {
		raw := prim.ScaleToRaw(*r.RPDNM, prim.OpMultiply, 1.0/256.0)
		w.WriteUint(uint64(raw)&0xFF, 8)
	}
	if r.APDDeg != nil {
		raw := prim.ScaleToRaw(*r.APDDeg, prim.OpMultiply, 360.0/16384.0)
		w.WriteUint(uint64(raw)&0xFF, 8)
	}

	return nil
}

// RadialDopplerSpeed is compound Data Item I048/202: an inner sub-FSPEC
// over the calculated Doppler speed and its ambiguity range.
type RadialDopplerSpeed struct {
	DopplerSpeed   *int16
	AmbiguityRange *uint16
}

func (d *RadialDopplerSpeed) Decode(r *bitio.Reader) error {
	bitmap, err := fspec.Read(r)
	if err != nil {
		return fmt.Errorf("cat048 I048/202: %w", err)
	}
	if fspec.IsPresent(bitmap, 1) {
		v, err := r.ReadInt(16)
		if err != nil {
			return err
		}
		s := int16(v)
		d.DopplerSpeed = &s
	}
	if fspec.IsPresent(bitmap, 2) {
		v, err := r.ReadUint(16)
		if err != nil {
			return err
		}
		u := uint16(v)
		d.AmbiguityRange = &u
	}

	return nil
}

func (d *RadialDopplerSpeed) Encode(w *bitio.Writer) error {
	b := fspec.NewBuilder()
	if d.DopplerSpeed != nil {
		b.Set(1)
	}
	if d.AmbiguityRange != nil {
		b.Set(2)
	}
	bitmap := b.Finalize()
	fspec.Write(w, bitmap)

	if d.DopplerSpeed != nil {
		w.WriteInt(int64(*d.DopplerSpeed), 16)
	}
	if d.AmbiguityRange != nil {
		w.WriteUint(uint64(*d.AmbiguityRange), 16)
	}

	return nil
}
