// Package pool provides the growable write buffer the encoder writes into, plus
// a sync.Pool-backed recycling layer so repeated top-level Encode calls amortize
// allocation instead of allocating a fresh buffer every time.
package pool

import (
	"io"
	"sync"
)

// BufferDefaultSize is the default capacity of a Buffer obtained from the pool.
const (
	BufferDefaultSize  = 1024 * 4  // 4KiB, enough for a typical Bolt message without growing
	BufferMaxThreshold = 1024 * 64 // buffers larger than this are discarded instead of pooled
)

// Buffer is the codec's WriteBuffer: it owns a heap byte array with an implicit
// (capacity, length, write cursor) triple expressed via Go slice semantics, and
// grows geometrically on demand. It is created per top-level Encode call (or
// reused from the pool below) and consumed by Bytes() when encoding finishes.
//
// A Buffer must not be shared across goroutines.
type Buffer struct {
	// B is the underlying byte slice. len(B) is the write cursor; cap(B) is the
	// buffer's capacity.
	B []byte
}

// NewBuffer creates a new Buffer with the specified initial capacity.
func NewBuffer(initialCap int) *Buffer {
	return &Buffer{
		B: make([]byte, 0, initialCap),
	}
}

// Bytes returns the written portion of the buffer. The returned slice shares the
// underlying array with the Buffer; callers must not retain it across a
// subsequent Write/Grow/Reset call, since growth reallocates and invalidates any
// earlier slice.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Reset empties the buffer but retains its allocated capacity for reuse.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Cap returns the buffer's current capacity.
func (b *Buffer) Cap() int {
	return cap(b.B)
}

// Grow ensures the buffer can accept n more bytes without reallocating.
//
// Growth policy: when the remaining capacity is insufficient, allocate
// max(2*capacity, capacity+n), copy the existing bytes across, and drop the old
// backing array. A write buffer never grows by less than doubling, so encoding
// a long list or string amortizes to O(1) per byte.
func (b *Buffer) Grow(n int) {
	if n < 0 {
		panic("pool: negative Grow size")
	}

	available := cap(b.B) - len(b.B)
	if available >= n {
		return
	}

	needed := cap(b.B) + n
	doubled := 2 * cap(b.B)
	newCap := max(needed, doubled)

	newBuf := make([]byte, len(b.B), newCap)
	copy(newBuf, b.B)
	b.B = newBuf
}

// WriteByte appends a single byte, growing the buffer if necessary. It always
// returns a nil error; it exists to satisfy io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	b.Grow(1)
	b.B = append(b.B, c)

	return nil
}

// Write appends data to the buffer, growing it as needed. It satisfies
// io.Writer and always returns len(data), nil.
func (b *Buffer) Write(data []byte) (int, error) {
	b.Grow(len(data))
	b.B = append(b.B, data...)

	return len(data), nil
}

// WriteTo writes the buffer's contents to w, satisfying io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.B)

	return int64(n), err
}

var (
	_ io.Writer     = (*Buffer)(nil)
	_ io.ByteWriter = (*Buffer)(nil)
	_ io.WriterTo   = (*Buffer)(nil)
)

// bufferPool recycles Buffers across top-level Encode calls.
var bufferPool = sync.Pool{
	New: func() any {
		return NewBuffer(BufferDefaultSize)
	},
}

// Get retrieves a Buffer from the pool, ready to write into.
func Get() *Buffer {
	buf, _ := bufferPool.Get().(*Buffer)

	return buf
}

// Put returns a Buffer to the pool for reuse. Oversized buffers are discarded
// instead of pooled, so one very large encode does not inflate the pool's
// steady-state memory footprint.
func Put(b *Buffer) {
	if b == nil {
		return
	}

	if cap(b.B) > BufferMaxThreshold {
		return
	}

	b.Reset()
	bufferPool.Put(b)
}
