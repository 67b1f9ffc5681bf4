// Package prim implements the primitive wire codecs shared by every Data
// Item: scaled-integer-to-float conversions (multiply/divide/add/subtract
// by a rational modifier) and the 6-bit IA5 character alphabet used by
// aircraft identification strings. Fixed-width integers are read and
// written directly with bitio's ReadUint/ReadInt/WriteUint/WriteInt.
package prim
