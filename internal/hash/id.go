// Package hash provides the content-hashing primitive used to key the decode
// cache (see the cache package): encoded PackStream byte payloads are hashed
// rather than compared byte-for-byte on every lookup.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given bytes.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// IDString computes the xxHash64 of the given string without a copy.
func IDString(data string) uint64 {
	return xxhash.Sum64String(data)
}
