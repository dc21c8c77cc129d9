package packstream_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packstream-go/packstream"
)

// TestEncode_ConcreteScenarios pins the wire bytes for the handful of
// scenarios that are easiest to get subtly wrong: tiny-vs-sized boundaries,
// the exact float bit pattern, and structure layout.
func TestEncode_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		v    packstream.Value
		want []byte
	}{
		{"tiny int 42", packstream.Int(42), []byte{0x2A}},
		{"tiny neg -16", packstream.Int(-16), []byte{0xF0}},
		{"int8 -17", packstream.Int(-17), []byte{0xC8, 0xEF}},
		{"int16 1234", packstream.Int(1234), []byte{0xC9, 0x04, 0xD2}},
		{"tiny neg -1", packstream.Int(-1), []byte{0xFF}},
		{"string A", packstream.String("A"), []byte{0x81, 0x41}},
		{"empty string", packstream.String(""), []byte{0x80}},
		{
			"list 1 2 3",
			packstream.List{packstream.Int(1), packstream.Int(2), packstream.Int(3)},
			[]byte{0x93, 0x01, 0x02, 0x03},
		},
		{
			"map a->1",
			packstream.Map{{Key: packstream.String("a"), Val: packstream.Int(1)}},
			[]byte{0xA1, 0x81, 0x61, 0x01},
		},
		{
			"float 1.1",
			packstream.Float(1.1),
			[]byte{0xC1, 0x3F, 0xF1, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9A},
		},
		{
			"structure",
			packstream.Structure{Signature: 0x01, Fields: []packstream.Value{packstream.Int(1), packstream.String("x")}},
			[]byte{0xB2, 0x01, 0x01, 0x81, 0x78},
		},
		{"null", packstream.Null{}, []byte{0xC0}},
		{"true", packstream.Bool(true), []byte{0xC3}},
		{"false", packstream.Bool(false), []byte{0xC2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := packstream.Encode(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecode_ConcreteScenarios(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		v, err := packstream.Decode([]byte{0xC0}, nil)
		require.NoError(t, err)
		assert.Equal(t, packstream.Null{}, v)
	})

	t.Run("true", func(t *testing.T) {
		v, err := packstream.Decode([]byte{0xC3}, nil)
		require.NoError(t, err)
		assert.Equal(t, packstream.Bool(true), v)
	})

	t.Run("false", func(t *testing.T) {
		v, err := packstream.Decode([]byte{0xC2}, nil)
		require.NoError(t, err)
		assert.Equal(t, packstream.Bool(false), v)
	})

	t.Run("string8 abc", func(t *testing.T) {
		v, err := packstream.Decode([]byte{0xD0, 0x03, 0x61, 0x62, 0x63}, nil)
		require.NoError(t, err)
		assert.Equal(t, packstream.String("abc"), v)
	})

	t.Run("truncated structure", func(t *testing.T) {
		_, err := packstream.Decode([]byte{0xDC, 0x01, 0x7F}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, packstream.ErrTruncated)
	})

	t.Run("unknown marker", func(t *testing.T) {
		_, err := packstream.Decode([]byte{0xD3, 0x00}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, packstream.ErrUnknownMarker)
	})
}

// TestRoundTrip_Integers covers every integer width boundary named in the
// wire contract, on both sides of each threshold.
func TestRoundTrip_Integers(t *testing.T) {
	values := []int64{
		0, 1, 16, 17, -16, -17, 127, 128, -127, -128,
		32767, 32768, -32767, -32768,
		math.MaxInt32 - 1, math.MaxInt32, math.MinInt32 + 1, math.MinInt32,
		int64(math.MaxInt32) + 1, int64(math.MinInt32) - 1,
		math.MaxInt64 - 1, math.MaxInt64, math.MinInt64,
	}

	for _, n := range values {
		n := n
		t.Run("", func(t *testing.T) {
			raw, err := packstream.Encode(packstream.Int(n))
			require.NoError(t, err)

			v, err := packstream.Decode(raw, nil)
			require.NoError(t, err)
			assert.Equal(t, packstream.Int(n), v)
		})
	}
}

// TestEncode_IntegerMinimumWidth asserts the encoded length is exactly what
// §4.2's width-selection table dictates; an encoder that ever picks a wider
// form than necessary fails this.
func TestEncode_IntegerMinimumWidth(t *testing.T) {
	cases := []struct {
		v       int64
		wantLen int
	}{
		{-16, 1}, {127, 1}, {-1, 1}, {0, 1},
		{-17, 2}, {-128, 2},
		{128, 3}, {-129, 3}, {32767, 3}, {-32768, 3},
		{32768, 5}, {-32769, 5}, {math.MaxInt32, 5}, {math.MinInt32, 5},
		{math.MaxInt32 + 1, 9}, {math.MinInt32 - 1, 9}, {math.MaxInt64, 9}, {math.MinInt64, 9},
	}

	for _, tc := range cases {
		raw, err := packstream.Encode(packstream.Int(tc.v))
		require.NoError(t, err)
		assert.Equalf(t, tc.wantLen, len(raw), "Int(%d)", tc.v)
	}
}

func TestRoundTrip_Strings(t *testing.T) {
	lengths := []int{0, 1, 15, 16, 254, 255, 256, 65534, 65535, 65536}

	for _, n := range lengths {
		n := n
		t.Run("", func(t *testing.T) {
			s := make([]byte, n)
			for i := range s {
				s[i] = byte('a' + i%26)
			}

			raw, err := packstream.Encode(packstream.String(s))
			require.NoError(t, err)

			v, err := packstream.Decode(raw, nil)
			require.NoError(t, err)
			assert.Equal(t, packstream.String(s), v)
		})
	}
}

func TestRoundTrip_UTF8MultibyteCrossesThreshold(t *testing.T) {
	// 15 two-byte code points is 30 UTF-8 bytes but only 15 runes; make sure the
	// marker is chosen on byte length, not rune count.
	s := ""
	for i := 0; i < 15; i++ {
		s += "é" // 2 bytes, 1 rune
	}

	raw, err := packstream.Encode(packstream.String(s))
	require.NoError(t, err)
	assert.Equal(t, byte(0xD0), raw[0]) // 30 bytes needs String8, not tiny

	v, err := packstream.Decode(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, packstream.String(s), v)
}

func TestEncode_InvalidUTF8(t *testing.T) {
	_, err := packstream.Encode(packstream.String(string([]byte{0xFF, 0xFE})))
	require.Error(t, err)
	assert.ErrorIs(t, err, packstream.ErrEncoding)
}

func TestDecode_InvalidUTF8(t *testing.T) {
	// markerString8, length 2, two invalid UTF-8 bytes.
	_, err := packstream.Decode([]byte{0xD0, 0x02, 0xFF, 0xFE}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, packstream.ErrEncoding)
}

func TestRoundTrip_Lists(t *testing.T) {
	lengths := []int{0, 15, 16, 255, 256, 65535, 65536}

	for _, n := range lengths {
		n := n
		t.Run("", func(t *testing.T) {
			l := make(packstream.List, n)
			for i := range l {
				l[i] = packstream.Int(int64(i % 128))
			}

			raw, err := packstream.Encode(l)
			require.NoError(t, err)

			v, err := packstream.Decode(raw, nil)
			require.NoError(t, err)
			assert.Equal(t, l, v)
		})
	}
}

func TestRoundTrip_Maps(t *testing.T) {
	lengths := []int{0, 15, 16, 255, 256, 65535, 65536}

	for _, n := range lengths {
		n := n
		t.Run("", func(t *testing.T) {
			m := make(packstream.Map, n)
			for i := range m {
				m[i] = packstream.Pair{
					Key: packstream.String(keyName(i)),
					Val: packstream.Int(int64(i)),
				}
			}

			raw, err := packstream.Encode(m)
			require.NoError(t, err)

			v, err := packstream.Decode(raw, nil)
			require.NoError(t, err)
			assert.Equal(t, m, v)
		})
	}
}

func keyName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := []byte{letters[i%26], letters[(i/26)%26], letters[(i/676)%26], letters[(i/17576)%26]}
	return string(b)
}

func TestDecode_MapDuplicateKeyLaterWins(t *testing.T) {
	// A1 markers would only encode one pair; build the wire bytes directly to
	// represent a map with a literal duplicate key, which Encode never
	// produces on its own but the wire format does not forbid.
	raw := []byte{
		0xA2,       // map, 2 pairs
		0x81, 0x61, // "a"
		0x01,       // 1
		0x81, 0x61, // "a" again
		0x02, // 2
	}

	v, err := packstream.Decode(raw, nil)
	require.NoError(t, err)

	m, ok := v.(packstream.Map)
	require.True(t, ok)
	require.Len(t, m, 1)
	assert.Equal(t, packstream.String("a"), m[0].Key)
	assert.Equal(t, packstream.Int(2), m[0].Val)
}

func TestDecode_MapUnsupportedKey(t *testing.T) {
	// A1 90 01: map with one pair whose key is an empty list (0x90), value 1.
	raw := []byte{0xA1, 0x90, 0x01}

	_, err := packstream.Decode(raw, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, packstream.ErrUnsupportedKey)
}

func TestRoundTrip_Structures(t *testing.T) {
	fieldCounts := []int{0, 15, 16, 255, 256, 65535}

	for _, n := range fieldCounts {
		n := n
		t.Run("", func(t *testing.T) {
			fields := make([]packstream.Value, n)
			for i := range fields {
				fields[i] = packstream.Int(int64(i % 128))
			}

			s := packstream.Structure{Signature: 0x7F, Fields: fields}

			raw, err := packstream.Encode(s)
			require.NoError(t, err)

			v, err := packstream.Decode(raw, nil)
			require.NoError(t, err)
			assert.Equal(t, s, v)
		})
	}
}

func TestEncode_StructureTooManyFieldsFailsRange(t *testing.T) {
	fields := make([]packstream.Value, 65536)
	for i := range fields {
		fields[i] = packstream.Null{}
	}

	_, err := packstream.Encode(packstream.Structure{Signature: 0x01, Fields: fields})
	require.Error(t, err)
	assert.ErrorIs(t, err, packstream.ErrRange)
}

func TestRoundTrip_Floats(t *testing.T) {
	values := []float64{
		0.0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1),
		1.1, -1.1, math.SmallestNonzeroFloat64,
	}

	for _, f := range values {
		f := f
		t.Run("", func(t *testing.T) {
			raw, err := packstream.Encode(packstream.Float(f))
			require.NoError(t, err)

			v, err := packstream.Decode(raw, nil)
			require.NoError(t, err)

			got, ok := v.(packstream.Float)
			require.True(t, ok)

			if math.Signbit(f) != math.Signbit(float64(got)) {
				t.Fatalf("sign bit mismatch: want %v got %v", f, got)
			}

			assert.Equal(t, f, float64(got))
		})
	}
}

func TestRoundTrip_FloatNaNPayloadPreserved(t *testing.T) {
	bits := uint64(0x7FF8000000000001) // quiet NaN, non-zero payload
	f := math.Float64frombits(bits)

	raw, err := packstream.Encode(packstream.Float(f))
	require.NoError(t, err)

	v, err := packstream.Decode(raw, nil)
	require.NoError(t, err)

	got, ok := v.(packstream.Float)
	require.True(t, ok)
	assert.Equal(t, bits, math.Float64bits(float64(got)))
}

func TestSymbolEncodesAsString(t *testing.T) {
	raw, err := packstream.Encode(packstream.Symbol("a"))
	require.NoError(t, err)

	want, err := packstream.Encode(packstream.String("a"))
	require.NoError(t, err)

	assert.Equal(t, want, raw)
}

func TestEncode_Idempotent(t *testing.T) {
	v := packstream.List{
		packstream.Int(7),
		packstream.Map{{Key: packstream.String("k"), Val: packstream.Bool(true)}},
		packstream.Structure{Signature: 0x4E, Fields: []packstream.Value{packstream.Null{}}},
	}

	a, err := packstream.Encode(v)
	require.NoError(t, err)

	b, err := packstream.Encode(v)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEncode_UnsupportedValue(t *testing.T) {
	_, err := packstream.Encode(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, packstream.ErrUnsupported)
}

func TestDecoder_AtEnd(t *testing.T) {
	d := packstream.NewDecoder([]byte{0x01, 0x02})

	assert.False(t, d.AtEnd())

	_, err := d.Decode()
	require.NoError(t, err)
	assert.False(t, d.AtEnd())

	_, err = d.Decode()
	require.NoError(t, err)
	assert.True(t, d.AtEnd())
}

func TestDecode_TruncatedInputs(t *testing.T) {
	cases := [][]byte{
		{},
		{0xC8},             // int8 marker, no payload byte
		{0xC9, 0x00},       // int16 marker, one payload byte short
		{0xD0, 0x05, 0x61}, // string8 claims 5 bytes, only 1 present
		{0x91},             // tiny list of 1, no element
		{0xA1, 0x81, 0x61}, // map of 1 pair, key present, value missing
		{0xB1, 0x01},       // tiny structure of 1 field, signature present, field missing
	}

	for _, raw := range cases {
		_, err := packstream.Decode(raw, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, packstream.ErrTruncated)
	}
}
