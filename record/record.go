package record

import (
	"fmt"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/errs"
	"github.com/skytrace/asterix/fspec"
)

// Slot is one catalog-defined Data Item's presence flag and its
// Decode/Encode pair, addressed by Field Reference Number.
type Slot interface {
	FRN() int
	Present() bool
	Decode(r *bitio.Reader) error
	Encode(w *bitio.Writer) error
}

// Definition is a category's concrete record: a set of Slots in
// ascending FRN order. Category packages implement this over their own
// Record struct, one field per Data Item.
type Definition interface {
	Slots() []Slot
}

type funcSlot struct {
	frn     int
	present func() bool
	decode  func(*bitio.Reader) error
	encode  func(*bitio.Writer) error
}

func (s funcSlot) FRN() int                     { return s.frn }
func (s funcSlot) Present() bool                { return s.present() }
func (s funcSlot) Decode(r *bitio.Reader) error { return s.decode(r) }
func (s funcSlot) Encode(w *bitio.Writer) error { return s.encode(w) }

// NewSlot builds a Slot from a FRN and its three behaviors. Category
// packages use this to adapt one optional pointer field into a Slot
// without hand-writing a type per Data Item.
func NewSlot(frn int, present func() bool, decode func(*bitio.Reader) error, encode func(*bitio.Writer) error) Slot {
	return funcSlot{frn: frn, present: present, decode: decode, encode: encode}
}

// Decode reads an FSPEC from r, then for every FRN whose presence bit is
// set, looks up the matching Slot in def and invokes its Decode. An FRN
// set in the FSPEC with no matching Slot is a catalog-out-of-range error;
// FRNs beyond fspec.NumSlots are never visited since the FSPEC itself
// bounds the walk.
func Decode(r *bitio.Reader, def Definition) error {
	bitmap, err := fspec.Read(r)
	if err != nil {
		return fmt.Errorf("record: reading fspec: %w", err)
	}

	byFRN := make(map[int]Slot, len(def.Slots()))
	for _, s := range def.Slots() {
		byFRN[s.FRN()] = s
	}

	slots := fspec.NumSlots(bitmap)
	for frn := 1; frn <= slots; frn++ {
		if !fspec.IsPresent(bitmap, frn) {
			continue
		}
		s, ok := byFRN[frn]
		if !ok {
			return fmt.Errorf("record: FRN %d set but undefined in catalog: %w", frn, errs.ErrFRNOutOfRange)
		}
		start := r.BytePos()
		if err := s.Decode(r); err != nil {
			return fmt.Errorf("record: decoding FRN %d at byte %d: %w", frn, start, err)
		}
		if !r.IsByteAligned() {
			return fmt.Errorf("record: FRN %d left cursor unaligned: %w", frn, errs.ErrNotByteAligned)
		}
	}

	return nil
}

// Finalize recomputes the FSPEC bitmap from which Slots in def are
// currently present.
func Finalize(def Definition) []byte {
	b := fspec.NewBuilder()
	for _, s := range def.Slots() {
		if s.Present() {
			b.Set(s.FRN())
		}
	}

	return b.Finalize()
}

// Encode finalizes def's FSPEC, writes it, then writes every present
// Slot's payload in ascending FRN order.
func Encode(w *bitio.Writer, def Definition) error {
	bitmap := Finalize(def)
	fspec.Write(w, bitmap)

	for _, s := range def.Slots() {
		if !s.Present() {
			continue
		}
		if err := s.Encode(w); err != nil {
			return fmt.Errorf("record: encoding FRN %d: %w", s.FRN(), err)
		}
		if !w.IsByteAligned() {
			return fmt.Errorf("record: FRN %d left writer unaligned: %w", s.FRN(), errs.ErrNotByteAligned)
		}
	}

	return nil
}
