package compress

import "fmt"

// Compressor compresses a byte payload.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; it is newly allocated, except
	//     for NoOpCompressor, which returns data itself
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte payload previously produced by a Compressor
// using the same algorithm.
type Decompressor interface {
	// Decompress decompresses data and returns the original result.
	//
	// Returns an error if data is corrupted or was compressed with a different
	// algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// Type identifies a compression algorithm.
type Type uint8

const (
	None Type = iota + 1
	Zstd
	S2
	LZ4
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// Get retrieves the built-in Codec for the given compression type.
func Get(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression type: %s", t)
}
