// Package cache keeps encoded PackStream payloads, optionally compressed,
// keyed by the content hash of their bytes, so a message shape repeated many
// times across a connection (the same field names, the same small Structures)
// is held once. It sits strictly above the packstream codec: Store never
// reaches into a Decoder's internals, it calls packstream.Decode on every
// cache hit and decodes nothing on a miss.
package cache

import (
	"sync"

	"github.com/packstream-go/packstream"
	"github.com/packstream-go/packstream/compress"
	"github.com/packstream-go/packstream/internal/hash"
)

// Store is a thread-safe decode cache keyed by content hash. Values are
// re-decoded from their (compressed) raw bytes on every Get rather than kept
// as live Values, so Store's resident memory cost is the compressed payload
// size, not the decoded object graph, and Get never returns a Value that
// aliases another caller's mutable state.
type Store struct {
	mu    sync.RWMutex
	codec compress.Codec
	byKey map[uint64][]byte
}

// NewStore returns an empty Store that compresses resident entries with
// codec. Pass compress.NewNoOpCompressor() to disable compression.
func NewStore(codec compress.Codec) *Store {
	return &Store{
		codec: codec,
		byKey: make(map[uint64][]byte),
	}
}

// Get looks up the decoded value for the given raw encoded payload: it hashes
// raw, looks up a compressed copy of a prior Put, decompresses it, and
// re-decodes it. A miss, or a decompress/decode failure on a hit, returns
// (nil, false).
func (s *Store) Get(raw []byte) (packstream.Value, bool) {
	key := hash.ID(raw)

	s.mu.RLock()
	compressed, ok := s.byKey[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	decompressed, err := s.codec.Decompress(compressed)
	if err != nil {
		return nil, false
	}

	v, err := packstream.Decode(decompressed, nil)
	if err != nil {
		return nil, false
	}

	return v, true
}

// Put compresses and stores raw keyed by its content hash. v is not
// retained: it exists on the Store's API because a caller naturally already
// has the decoded Value in hand right after decoding raw, but the cache
// re-decodes from raw on every Get rather than trust a second, possibly
// stale copy of the decoded shape.
func (s *Store) Put(raw []byte, v packstream.Value) error {
	_ = v

	compressed, err := s.codec.Compress(raw)
	if err != nil {
		return err
	}

	key := hash.ID(raw)

	s.mu.Lock()
	s.byKey[key] = compressed
	s.mu.Unlock()

	return nil
}

// Len returns the number of entries currently resident in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byKey)
}

// Delete removes the entry for raw's content hash, if any.
func (s *Store) Delete(raw []byte) {
	key := hash.ID(raw)

	s.mu.Lock()
	delete(s.byKey, key)
	s.mu.Unlock()
}
