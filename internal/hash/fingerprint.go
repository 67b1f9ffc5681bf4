// Package hash computes a stable fingerprint for a raw packet buffer, used
// to tag decode errors so a caller can correlate a bad packet across logs
// without re-embedding the raw bytes.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a raw packet's bytes.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
