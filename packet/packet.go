package packet

import (
	"fmt"
	"iter"

	"github.com/skytrace/asterix/bitio"
	"github.com/skytrace/asterix/errs"
	"github.com/skytrace/asterix/internal/hash"
	"github.com/skytrace/asterix/record"
	"github.com/skytrace/asterix/registry"
)

// DecodeError wraps a packet decode failure with an xxHash64 fingerprint of
// the raw bytes that failed, so repeated failures across a log stream can
// be correlated without re-embedding the offending buffer.
type DecodeError struct {
	Err         error
	Fingerprint uint64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("packet: fingerprint %016x: %v", e.Fingerprint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// HeaderSize is the fixed three-byte packet header: one category byte plus
// a two-byte big-endian length.
const HeaderSize = 3

// Packet is one ASTERIX transmission unit: a category, a declared total
// length, and the ordered Category Records sharing that category.
type Packet struct {
	Category byte
	Length   uint16
	Records  []record.Definition
}

// Finalize recomputes Length from the encoded size of Records plus the
// three-byte header. It is idempotent.
func Finalize(p *Packet, reg *registry.Registry) (*Packet, error) {
	w := bitio.NewWriter()
	for _, def := range p.Records {
		if err := reg.Encode(w, def); err != nil {
			return nil, err
		}
	}
	p.Length = uint16(HeaderSize + len(w.Bytes()))

	return p, nil
}

// Encode writes p's three-byte header followed by each Record in order.
// Callers should Finalize p first if its Records were mutated.
func Encode(w *bitio.Writer, p *Packet, reg *registry.Registry) error {
	w.WriteUint(uint64(p.Category), 8)
	w.WriteUint(uint64(p.Length), 16)
	for _, def := range p.Records {
		if err := reg.Encode(w, def); err != nil {
			return err
		}
	}

	return nil
}

// Decode reads one packet from r starting at the current byte position: the
// three-byte header, then Category Records for Category until Length bytes
// have been consumed in total.
func Decode(r *bitio.Reader, reg *registry.Registry) (*Packet, error) {
	if !r.IsByteAligned() {
		return nil, errs.ErrNotByteAligned
	}
	startByte := r.BytePos()

	category, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	length, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	if length < HeaderSize {
		return nil, fmt.Errorf("packet: length %d shorter than header: %w", length, errs.ErrInvalidHeaderSize)
	}

	p := &Packet{Category: byte(category), Length: uint16(length)}

	if !reg.Has(byte(category)) {
		return nil, fmt.Errorf("packet: category %d at byte %d: %w", category, startByte, errs.ErrUnknownCategory)
	}

	endByte := startByte + int(length)
	for r.BytePos() < endByte {
		def, err := reg.Decode(byte(category), r)
		if err != nil {
			return nil, err
		}
		p.Records = append(p.Records, def)
		if !r.IsByteAligned() {
			return nil, errs.ErrNotByteAligned
		}
	}

	if r.BytePos() != endByte {
		return nil, fmt.Errorf("packet: category %d: %w", category, errs.ErrLengthMismatch)
	}

	return p, nil
}

// DecodeAll iterates consecutive packets out of data, advancing by each
// packet's declared length. On a decode failure, the yielded error is a
// *DecodeError fingerprinting the failed packet's bytes. If the registry's
// ResyncOnError is true (the default), and the packet's length header was
// itself readable, the iterator skips that many bytes and continues;
// otherwise it stops, per spec §7's either-choice requirement. A packet
// whose declared length runs past the end of data yields an error that
// also wraps errs.ErrTruncatedStream, and the iteration stops there.
func DecodeAll(data []byte, reg *registry.Registry) iter.Seq2[*Packet, error] {
	return func(yield func(*Packet, error) bool) {
		pos := 0
		for pos < len(data) {
			declared := peekDeclaredLength(data, pos)
			r := bitio.NewReader(data[pos:])
			p, err := Decode(r, reg)
			if err != nil {
				if declared > 0 && pos+declared > len(data) {
					err = fmt.Errorf("packet: declared length %d exceeds %d remaining bytes: %w: %w",
						declared, len(data)-pos, errs.ErrTruncatedStream, err)
				}
				end := declared
				if end <= 0 || pos+end > len(data) {
					end = len(data) - pos
				}
				decErr := &DecodeError{Err: err, Fingerprint: hash.Fingerprint(data[pos : pos+end])}

				if !reg.ResyncOnError() || declared <= 0 || pos+declared > len(data) {
					yield(nil, decErr)
					return
				}
				if !yield(nil, decErr) {
					return
				}
				pos += declared
				continue
			}
			pos += int(p.Length)
			if !yield(p, nil) {
				return
			}
		}
	}
}

func peekDeclaredLength(data []byte, startByte int) int {
	if startByte+HeaderSize > len(data) {
		return -1
	}

	return int(data[startByte+1])<<8 | int(data[startByte+2])
}
