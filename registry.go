package packstream

import "sync"

// Constructor builds a richer Go value out of a decoded structure's fields.
// It is handed the fields in wire order and returns the Value that should
// replace the bare Structure in the decode result. A Constructor that cannot
// accept the given fields (wrong count, wrong shapes) should return an error;
// Decode returns that error to its caller unchanged.
//
// Value is a sealed interface: a Constructor defined outside this package
// cannot implement it directly, since isValue is unexported. The escape
// hatch is embedding: a host type that embeds Structure inherits isValue
// through method promotion and so satisfies Value while still carrying its
// own typed fields, e.g.:
//
//	type Point struct {
//		packstream.Structure
//		X, Y int64
//	}
type Constructor func(fields []Value) (Value, error)

// StructRegistry maps structure signature bytes to Constructors. A Decoder
// with no registry, or one missing an entry for a given signature, produces a
// bare Structure for that signature instead of failing: reification is
// strictly additive sugar over the always-available Structure shape.
type StructRegistry struct {
	mu           sync.RWMutex
	constructors map[byte]Constructor
}

// NewStructRegistry returns an empty registry.
func NewStructRegistry() *StructRegistry {
	return &StructRegistry{constructors: make(map[byte]Constructor)}
}

// Register associates signature with the given Constructor, replacing any
// previous registration for that signature.
func (r *StructRegistry) Register(signature byte, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.constructors[signature] = ctor
}

// Unregister removes any constructor registered for signature.
func (r *StructRegistry) Unregister(signature byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.constructors, signature)
}

// lookup returns the constructor for signature, if any.
func (r *StructRegistry) lookup(signature byte) (Constructor, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.constructors[signature]
	return ctor, ok
}

// reify runs the registered constructor for s.Signature against s.Fields, if
// one is registered; otherwise it returns s unchanged.
func (r *StructRegistry) reify(s Structure) (Value, error) {
	ctor, ok := r.lookup(s.Signature)
	if !ok {
		return s, nil
	}

	return ctor(s.Fields)
}
