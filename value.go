package packstream

// Value is the closed set of shapes the codec can encode and decode. It is a
// sealed interface: isValue is unexported, so no type outside this package
// can implement it. Every wire value decodes to exactly one of the concrete
// types below, and every encodable value must be one of them.
type Value interface {
	isValue()
}

// Null is the absence of a value. The zero value is ready to use.
type Null struct{}

func (Null) isValue() {}

// Bool is a boolean value.
type Bool bool

func (Bool) isValue() {}

// Int is a signed 64-bit integer. The encoder picks the narrowest marker that
// can hold it; the decoder always widens back to Int regardless of which
// marker was used on the wire.
type Int int64

func (Int) isValue() {}

// Float is an IEEE-754 double-precision value, always encoded as 8
// big-endian bytes behind markerFloat64. Encoding and decoding both go
// through the raw bit pattern (math.Float64bits/math.Float64frombits), so a
// NaN's sign bit and payload survive a round trip unchanged, same as ±0.0's
// sign.
type Float float64

func (Float) isValue() {}

// String is a UTF-8 text value. The encoder rejects strings that are not
// well-formed UTF-8; the decoder rejects wire payloads that are not
// well-formed UTF-8.
type String string

func (String) isValue() {}

// Symbol is a host-side interned name. It has no marker of its own: it
// encodes exactly like String and is never produced by the decoder, which
// always produces String. Symbol exists so callers working with a fixed,
// repeated vocabulary (field names, structure tags) can avoid allocating the
// same Go string value from decoded bytes more than once; the encoder reads
// straight through to the underlying text.
type Symbol string

func (Symbol) isValue() {}

// List is an ordered, heterogeneous sequence of values.
type List []Value

func (List) isValue() {}

// Pair is one key/value entry of a Map, kept as a struct (rather than folded
// into a Go map at this layer) so the encoder can stream the wire's
// length-prefix-then-entries layout without first deciding whether the keys
// are representable as Go map keys.
type Pair struct {
	Key Value
	Val Value
}

// Map is an ordered sequence of key/value pairs. Order is preserved on
// encode; on decode, order reflects wire order, and a repeated key overwrites
// the earlier entry in place (the later pair's value wins, the entry keeps
// the earlier pair's position) per the wire contract's duplicate-key rule.
type Map []Pair

func (Map) isValue() {}

// Structure is a tagged, fixed-arity, ordered sequence of values: a one-byte
// signature plus a field list. StructRegistry can reify known signatures into
// richer Go types during decode; any signature without a registered
// constructor decodes to a bare Structure.
type Structure struct {
	Signature byte
	Fields    []Value
}

func (Structure) isValue() {}

// structure returns s itself. It exists so a host type that embeds Structure
// (to satisfy the sealed Value interface, per Constructor's doc comment)
// also promotes this method, letting Encoder.Pack recognize and encode it as
// a Structure without a type switch case for every possible host type — the
// capability-interface bridge described for host value-objects.
func (s Structure) structure() Structure { return s }

// structureCarrier is satisfied by Structure itself and by any type that
// embeds it.
type structureCarrier interface {
	structure() Structure
}

