// Package fspec implements the Field Specification (FSPEC) presence
// bitmap shared by every ASTERIX record and every compound Data Item's
// secondary subfield block.
//
// An FSPEC is a variable-length sequence of octets. Within each octet,
// bits 7..1 (MSB first) are presence flags for consecutive Field
// Reference Numbers (FRNs), and bit 0 is the FX (field extension) bit:
// set to continue into another octet, clear to terminate the FSPEC.
// Every octet therefore carries exactly 7 usable FRN slots; FRN k sits
// at octet index (k-1)/7, bit mask 1<<(7-((k-1)%7)), applied uniformly
// with no gaps or special-cased FRNs.
//
// Reading stops at the first octet with a clear FX bit; building trims
// trailing all-zero octets (down to a minimum of one) and sets the FX
// bit on every octet but the last.
package fspec
