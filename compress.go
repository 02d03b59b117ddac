package houtveilig

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compressor turns the raw scanlines of a canvas into the payload of the image data chunk.
type Compressor interface {
	Compress(raw []byte) ([]byte, error)
}

var _ Compressor = (*ZlibCompressor)(nil)

// ZlibCompressor wraps the raw data into a zlib stream (deflate with an
// adler-32 trailer), which is the only stream format the container accepts.
type ZlibCompressor struct {
	Level int
}

// NewCompressor returns a compressor running at maximum effort.
func NewCompressor() *ZlibCompressor {
	return &ZlibCompressor{Level: zlib.BestCompression}
}

// Compress implements the Compressor interface.
func (z *ZlibCompressor) Compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, z.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream produced by Compress.
func Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return raw, nil
}
