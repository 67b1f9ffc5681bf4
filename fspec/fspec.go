package fspec

import (
	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/errs"
)

// Position returns the zero-based octet index and the presence-bit mask
// for Field Reference Number frn (frn must be >= 1). Octet index k holds
// FRNs 7k+1..7k+7 in bits 7..1; bit 0 of every octet is the FX bit and
// never carries an FRN.
func Position(frn int) (octet int, mask byte) {
	if frn < 1 {
		panic("fspec: FRN must be >= 1")
	}
	octet = (frn - 1) / 7
	shift := 7 - ((frn - 1) % 7)
	mask = 1 << uint(shift)

	return octet, mask
}

// NumSlots returns how many FRN presence slots a bitmap of this length
// can address (7 per octet).
func NumSlots(bitmap []byte) int {
	return len(bitmap) * 7
}

// IsPresent reports whether FRN frn's presence bit is set in bitmap. An
// FRN beyond the bitmap's length is treated as absent.
func IsPresent(bitmap []byte, frn int) bool {
	octet, mask := Position(frn)
	if octet >= len(bitmap) {
		return false
	}

	return bitmap[octet]&mask != 0
}

// Read consumes octets from r until one with a clear FX bit (bit 0) is
// found, returning the raw bitmap bytes including their FX bits. A
// zero-octet FSPEC (no input left at the cursor) is rejected with
// errs.ErrEmptyFSPEC: every record and compound subfield carries at least
// one octet.
func Read(r *bitio.Reader) ([]byte, error) {
	if r.BitsRemaining() == 0 {
		return nil, errs.ErrEmptyFSPEC
	}
	var out []byte
	for {
		v, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		b := byte(v)
		out = append(out, b)
		if b&0x01 == 0 {
			break
		}
	}

	return out, nil
}

// Write emits bitmap's octets verbatim; callers must have already set FX
// bits correctly (Builder.Finalize does this).
func Write(w *bitio.Writer, bitmap []byte) {
	for _, b := range bitmap {
		w.WriteUint(uint64(b), 8)
	}
}

// Builder accumulates FRN presence bits and produces a minimal,
// correctly FX-terminated FSPEC bitmap.
type Builder struct {
	octets []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Set marks FRN frn present, growing the bitmap as needed.
func (b *Builder) Set(frn int) {
	octet, mask := Position(frn)
	for len(b.octets) <= octet {
		b.octets = append(b.octets, 0)
	}
	b.octets[octet] |= mask
}

// Finalize trims trailing all-zero octets, never removing the final
// remaining octet, sets every FX bit but the last, and returns the
// resulting bitmap. An empty Builder finalizes to a single zero octet
// with no FX bit, since a real record always declares at least one
// octet of FSPEC.
func (b *Builder) Finalize() []byte {
	n := len(b.octets)
	for n > 1 && b.octets[n-1] == 0 {
		n--
	}
	out := make([]byte, n)
	copy(out, b.octets[:n])
	if len(out) == 0 {
		out = []byte{0}
	}
	for i := range out {
		if i < len(out)-1 {
			out[i] |= 0x01
		} else {
			out[i] &^= 0x01
		}
	}

	return out
}
