// Package errs defines the sentinel errors returned across the asterix
// module. Call sites wrap these with fmt.Errorf("...: %w", errs.ErrX) to
// attach byte-offset or FRN context; callers compare with errors.Is.
package errs

import "errors"

var (
	// ErrUnderflow is returned when a bit cursor is asked to read more bits
	// than remain in the source buffer.
	ErrUnderflow = errors.New("asterix: buffer underflow")

	// ErrNotByteAligned is returned when AlignToByte is called on a read
	// cursor that is not already on a byte boundary.
	ErrNotByteAligned = errors.New("asterix: cursor not byte-aligned")

	// ErrInvalidDiscriminant is returned when an exhaustively specified enum
	// field decodes to a value outside its closed set.
	ErrInvalidDiscriminant = errors.New("asterix: invalid enum discriminant")

	// ErrEmptyFSPEC is returned when a record's FSPEC has zero octets.
	ErrEmptyFSPEC = errors.New("asterix: empty FSPEC")

	// ErrFRNOutOfRange is returned when the FSPEC asserts a FRN beyond the
	// catalog's defined range for the category.
	ErrFRNOutOfRange = errors.New("asterix: FRN out of catalog range")

	// ErrInvalidHeaderSize is returned when a packet envelope's declared
	// length is smaller than its own 3-byte header.
	ErrInvalidHeaderSize = errors.New("asterix: invalid header size")

	// ErrLengthMismatch is returned when the envelope's length field
	// disagrees with the total bytes consumed decoding its records.
	ErrLengthMismatch = errors.New("asterix: envelope length mismatch")

	// ErrUnknownCategory is returned when the registry has no codec
	// registered for a category byte.
	ErrUnknownCategory = errors.New("asterix: unknown category")

	// ErrWrongRecordType reports a record.Definition handed to the codec of
	// a different category. No function in this module returns it:
	// registry.Encode and packet.Encode do not compare a record's type with
	// the packet's category.
	ErrWrongRecordType = errors.New("asterix: record type does not match category codec")

	// ErrTruncatedStream is returned by DecodeAll when a packet's declared
	// length exceeds the bytes remaining in the stream.
	ErrTruncatedStream = errors.New("asterix: truncated stream")
)
