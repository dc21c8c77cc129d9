package packstream

import (
	"math"
	"unicode/utf8"

	"github.com/packstream-go/packstream/endian"
	"github.com/packstream-go/packstream/internal/pool"
)

// wireEndian is fixed: PackStream is always big-endian on the wire regardless
// of host native order.
var wireEndian = endian.GetBigEndianEngine()

// Encoder serializes Values into PackStream's byte wire format. It owns a
// growable write buffer (internal/pool.Buffer) so repeated Pack calls on a
// single Encoder amortize allocation; a fresh top-level value should start
// from Reset or a new Encoder.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf *pool.Buffer
}

// EncoderOption configures an Encoder at construction time, matching the
// teacher's functional-options call-site convention (one or more With...
// values passed into the constructor) without pulling in a generic options
// package: an Encoder has exactly one knob worth exposing, so a plain
// func(*Encoder) closure carries it with no extra indirection.
type EncoderOption func(*Encoder)

// WithInitialCapacity sizes the Encoder's write buffer up front instead of
// taking the pool's default-sized buffer, so a caller who knows it is about
// to pack a large value can avoid the Grow reallocations that would
// otherwise happen along the way.
func WithInitialCapacity(n int) EncoderOption {
	return func(e *Encoder) {
		e.buf = pool.NewBuffer(n)
	}
}

// NewEncoder returns an Encoder with a pooled write buffer, or one sized per
// opts. Call Release when done to return the buffer to the pool.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{buf: pool.Get()}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Reset empties the encoder's buffer, keeping its capacity, so it can encode
// another top-level value.
func (e *Encoder) Reset() {
	e.buf.Reset()
}

// Bytes returns the bytes written so far. The returned slice shares storage
// with the encoder's internal buffer and is invalidated by the next Pack or
// Reset call; callers that need to keep it must copy.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Release returns the encoder's buffer to the pool. The Encoder must not be
// used again afterward.
func (e *Encoder) Release() {
	pool.Put(e.buf)
	e.buf = nil
}

// Encode is the one-shot convenience entry point: it packs v and returns a
// fresh copy of the resulting bytes, recycling its working buffer through the
// pool internally.
func Encode(v Value) ([]byte, error) {
	e := NewEncoder()
	defer e.Release()

	if err := e.Pack(v); err != nil {
		return nil, err
	}

	out := make([]byte, len(e.Bytes()))
	copy(out, e.Bytes())

	return out, nil
}

// Pack appends the wire encoding of v to the encoder's buffer, recursing into
// List/Map/Structure elements. It returns ErrUnsupported for any Value
// implementation outside the closed sum, ErrRange for a value whose magnitude
// or length exceeds what the wire format can express, and ErrEncoding for a
// String/Symbol that is not well-formed UTF-8.
func (e *Encoder) Pack(v Value) error {
	switch val := v.(type) {
	case Null:
		return e.buf.WriteByte(markerNull)
	case Bool:
		return e.packBool(bool(val))
	case Int:
		return e.packInt(int64(val))
	case Float:
		return e.packFloat(float64(val))
	case String:
		return e.packString(string(val))
	case Symbol:
		return e.packString(string(val))
	case List:
		return e.packList(val)
	case Map:
		return e.packMap(val)
	case Structure:
		return e.packStructure(val)
	case nil:
		return encodeError(ErrUnsupported, v)
	default:
		if sc, ok := v.(structureCarrier); ok {
			return e.packStructure(sc.structure())
		}

		return encodeError(ErrUnsupported, v)
	}
}

func (e *Encoder) packBool(v bool) error {
	if v {
		return e.buf.WriteByte(markerTrue)
	}

	return e.buf.WriteByte(markerFalse)
}

// packInt picks the narrowest marker that can hold v: tiny (single byte) when
// -16 <= v <= 127, then int8/int16/int32/int64 as v's magnitude outgrows each
// width in turn. Each tier's bound matches the original PackStream reference
// encoder's width thresholds exactly.
func (e *Encoder) packInt(v int64) error {
	switch {
	case v >= -16 && v <= 127:
		return e.buf.WriteByte(byte(int8(v)))
	case v >= -128 && v <= 127:
		if err := e.buf.WriteByte(markerInt8); err != nil {
			return err
		}

		return e.buf.WriteByte(byte(int8(v)))
	case v >= -32768 && v <= 32767:
		return e.writeMarkerAndUint(markerInt16, 2, uint64(uint16(int16(v))))
	case v >= -2147483648 && v <= 2147483647:
		return e.writeMarkerAndUint(markerInt32, 4, uint64(uint32(int32(v))))
	default:
		return e.writeMarkerAndUint(markerInt64, 8, uint64(v))
	}
}

func (e *Encoder) packFloat(v float64) error {
	return e.writeMarkerAndUint(markerFloat64, 8, math.Float64bits(v))
}

func (e *Encoder) packString(s string) error {
	if !utf8.ValidString(s) {
		return encodeError(ErrEncoding, s)
	}

	n := len(s)
	if err := e.writeContainerHeader(markerTinyStringMin, markerString8, markerString16, markerString32, n); err != nil {
		return err
	}

	_, err := e.buf.Write([]byte(s))
	return err
}

func (e *Encoder) packList(l List) error {
	n := len(l)
	if err := e.writeContainerHeader(markerTinyListMin, markerList8, markerList16, markerList32, n); err != nil {
		return err
	}

	for _, elem := range l {
		if err := e.Pack(elem); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) packMap(m Map) error {
	n := len(m)
	if err := e.writeContainerHeader(markerTinyMapMin, markerMap8, markerMap16, markerMap32, n); err != nil {
		return err
	}

	for _, pair := range m {
		if err := e.Pack(pair.Key); err != nil {
			return err
		}

		if err := e.Pack(pair.Val); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) packStructure(s Structure) error {
	n := len(s.Fields)

	switch {
	case n < 16:
		if err := e.buf.WriteByte(byte(markerTinyStructMin + n)); err != nil {
			return err
		}
	case n <= 0xFF:
		if err := e.writeMarkerAndUint(markerStruct8, 1, uint64(n)); err != nil {
			return err
		}
	case n <= 0xFFFF:
		if err := e.writeMarkerAndUint(markerStruct16, 2, uint64(n)); err != nil {
			return err
		}
	default:
		return encodeError(ErrRange, s)
	}

	if err := e.buf.WriteByte(s.Signature); err != nil {
		return err
	}

	for _, field := range s.Fields {
		if err := e.Pack(field); err != nil {
			return err
		}
	}

	return nil
}

// writeContainerHeader writes the marker (and, for non-tiny sizes, the
// length-prefix bytes) for a String/List/Map of n elements or bytes. tinyBase
// is the marker for a count of 0 (e.g. markerTinyStringMin); n in 0..15 is
// encoded directly in the marker's low nibble.
func (e *Encoder) writeContainerHeader(tinyBase, marker8, marker16, marker32 byte, n int) error {
	n64 := int64(n)

	switch {
	case n64 < 16:
		return e.buf.WriteByte(tinyBase + byte(n64))
	case n64 <= 0xFF:
		return e.writeMarkerAndUint(marker8, 1, uint64(n64))
	case n64 <= 0xFFFF:
		return e.writeMarkerAndUint(marker16, 2, uint64(n64))
	case n64 <= 0xFFFFFFFF:
		return e.writeMarkerAndUint(marker32, 4, uint64(n64))
	default:
		return encodeError(ErrRange, n)
	}
}

// writeMarkerAndUint writes marker followed by the low width bytes of bits,
// big-endian.
func (e *Encoder) writeMarkerAndUint(marker byte, width int, bits uint64) error {
	if err := e.buf.WriteByte(marker); err != nil {
		return err
	}

	var tmp [8]byte
	switch width {
	case 1:
		tmp[0] = byte(bits)
	case 2:
		wireEndian.PutUint16(tmp[:2], uint16(bits))
	case 4:
		wireEndian.PutUint32(tmp[:4], uint32(bits))
	case 8:
		wireEndian.PutUint64(tmp[:8], bits)
	}

	_, err := e.buf.Write(tmp[:width])
	return err
}
