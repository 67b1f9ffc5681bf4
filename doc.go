// Package asterix implements a bidirectional, byte-exact codec for the
// ASTERIX family of binary radar-surveillance messages (EUROCONTROL "All
// Purpose Structured Eurocontrol Surveillance Information Exchange"),
// covering Category 034 (Monoradar Service Messages) and Category 048
// (Monoradar Target Reports).
//
// # Core Features
//
//   - Bit-granular FSPEC (field specification) presence-map codec
//   - FX (field-extension) chain support for open-ended Data Items
//   - Fixed, extended, repetitive and compound Data Item shapes
//   - Scaled-integer, two's-complement signed and IA5 character encodings
//     (signed fields are two's complement; there is no sign-magnitude codec)
//   - A category registry so new catalogs plug in without touching the
//     core engine
//
// # Basic Usage
//
// Decoding a single packet:
//
//	import "github.com/skytrace/asterix"
//
//	pkt, err := asterix.DecodePacket(raw)
//	if err != nil {
//	    // handle error
//	}
//	for _, rec := range pkt.Records {
//	    // rec is a category-specific *cat034.Record or *cat048.Record
//	}
//
// Iterating a concatenated stream of packets:
//
//	for pkt, err := range asterix.DecodeAll(stream) {
//	    if err != nil {
//	        continue // resynced past the bad packet by default
//	    }
//	    _ = pkt
//	}
//
// Encoding a packet back to its wire form:
//
//	out, err := asterix.EncodePacket(pkt)
//
// # Package Structure
//
// This package is a thin convenience wrapper over packet, registry, cat034
// and cat048. A custom catalog or a non-default resync policy is passed with
// WithCategory or WithResyncOnError; alternatively, build a
// *registry.Registry directly and use the packet package's functions.
package asterix
