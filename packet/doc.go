// Package packet implements the outermost ASTERIX envelope: a three-byte
// fixed header (category, big-endian length including the header itself)
// followed by one or more Category Records for that category, and the
// stream-wise iteration needed to pull consecutive packets out of a single
// transmission buffer.
package packet
