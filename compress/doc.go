// Package compress provides compression codecs for the decode cache's resident
// byte payloads (see the cache package).
//
// It is not used by the wire codec itself: PackStream bytes on the wire are
// never compressed. A long-lived Bolt client's cache package may accumulate many
// cached raw payloads (repeated Structure field-key lists, routing tables), and
// compressing them trades CPU for memory the same way the codec's supporting
// infrastructure elsewhere trades memory for allocation counts.
//
// Four algorithms are available:
//   - None: no compression, fastest
//   - Zstd: best compression ratio
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression
//
// All four implement Codec:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
package compress
