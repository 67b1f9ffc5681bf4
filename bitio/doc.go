// Package bitio provides a read/write cursor over a byte buffer addressable
// at single-bit granularity, with big-endian integer extraction and
// insertion at arbitrary bit widths up to 64 bits.
//
// ASTERIX fields are packed without regard to byte boundaries (a 3-bit
// enum can sit directly before a 12-bit integer within the same byte), so
// the cursor -- not encoding/binary -- is the unit every Data Item is built
// on. Reader extracts bits straight from its byte slice at the current bit
// offset; Writer ORs bits into a byte slice that grows by one zero byte
// whenever a write reaches past its end.
package bitio
