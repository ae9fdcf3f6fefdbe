package osshkey

import "github.com/postalsys/osshkey/internal/wire"

// ByteStream is a cursor-based binary reader/writer over an in-memory
// buffer. The cursor only moves forward; there is no seek operation. Every parse or pack operation allocates its own
// ByteStream; none is shared across goroutines.
type ByteStream = wire.ByteStream

// NewByteStreamReader wraps buf for reading from offset 0.
func NewByteStreamReader(buf []byte) *ByteStream {
	return wire.NewByteStreamReader(buf)
}

// NewByteStreamWriter returns an empty ByteStream ready to be written to.
func NewByteStreamWriter() *ByteStream {
	return wire.NewByteStreamWriter()
}
