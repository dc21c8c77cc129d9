package packstream_test

import (
	"testing"

	"github.com/packstream-go/packstream"
)

func benchValue() packstream.Value {
	fields := make(packstream.Map, 0, 8)
	for i := range 8 {
		fields = append(fields, packstream.Pair{
			Key: packstream.String("field_name_is_moderately_long"),
			Val: packstream.Int(int64(i * 7)),
		})
	}

	return packstream.List{
		packstream.String("n4j-query-result"),
		packstream.Float(3.14159),
		fields,
		packstream.Structure{
			Signature: 0x4E,
			Fields:    []packstream.Value{packstream.Int(17), fields},
		},
	}
}

func BenchmarkEncoder_Pack(b *testing.B) {
	v := benchValue()
	e := packstream.NewEncoder()
	defer e.Release()

	for b.Loop() {
		e.Reset()
		if err := e.Pack(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	v := benchValue()

	for b.Loop() {
		if _, err := packstream.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}
