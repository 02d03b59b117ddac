package houtveilig

import (
	"bytes"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Processor options
type Processor struct {
	Palette    Palette
	Compressor Compressor
	Logger     *zap.Logger
	// Verify enables a structural check of every generated file before it is returned.
	Verify bool
}

// NewProcessor creates a processor from the run configuration.
// A nil logger disables logging.
func NewProcessor(cfg *Config, logger *zap.Logger) (*Processor, error) {
	pal, err := cfg.Palette.Parse()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		Palette:    pal,
		Compressor: NewCompressor(),
		Logger:     logger,
		Verify:     cfg.Verify,
	}, nil
}

// Generate renders the icon of the given size and returns the encoded PNG file.
func (p *Processor) Generate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	now := time.Now()

	canvas := Rasterize(size, p.Palette)
	raw := canvas.Scanlines()

	data, err := p.Compressor.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("icon %d: %w", size, err)
	}
	out := EncodeBytes(size, size, data)

	if p.Verify {
		if err := Verify(out, size); err != nil {
			return nil, fmt.Errorf("icon %d: %w", size, err)
		}
	}

	p.Logger.Debug("icon generated",
		zap.Int("size", size),
		zap.Int("raw_bytes", len(raw)),
		zap.Int("compressed_bytes", len(data)),
		zap.Int("file_bytes", len(out)),
		zap.Duration("took", time.Since(now)),
	)
	return out, nil
}

// Verify checks that data is a well formed size*size icon: signature, chunk
// order and checksums, header fields, and the decompressed scanlines with
// their filter bytes and fully opaque pixels.
func Verify(data []byte, size int) error {
	chunks, err := ReadChunks(data)
	if err != nil {
		return err
	}
	if len(chunks) < 3 {
		return fmt.Errorf("%w: expected at least 3 chunks, got %d", ErrCorrupt, len(chunks))
	}
	if chunks[0].Tag != TagHeader {
		return fmt.Errorf("%w: first chunk is %s", ErrCorrupt, chunks[0].Tag)
	}
	last := chunks[len(chunks)-1]
	if last.Tag != TagTrailer || len(last.Payload) != 0 {
		return fmt.Errorf("%w: missing trailer", ErrCorrupt)
	}

	hdr, err := ParseHeader(chunks[0].Payload)
	if err != nil {
		return err
	}
	if want := NewHeader(size, size); hdr != want {
		return fmt.Errorf("%w: header %+v, want %+v", ErrCorrupt, hdr, want)
	}

	var compressed bytes.Buffer
	for _, c := range chunks[1 : len(chunks)-1] {
		if c.Tag != TagData {
			return fmt.Errorf("%w: unexpected %s chunk", ErrCorrupt, c.Tag)
		}
		compressed.Write(c.Payload)
	}
	raw, err := Decompress(compressed.Bytes())
	if err != nil {
		return err
	}

	rowSize := 1 + 4*size
	if len(raw) != size*rowSize {
		return fmt.Errorf("%w: %d bytes of image data, want %d", ErrCorrupt, len(raw), size*rowSize)
	}
	for y := 0; y < size; y++ {
		row := raw[y*rowSize : (y+1)*rowSize]
		if row[0] != 0 {
			return fmt.Errorf("%w: scanline %d uses filter %d", ErrCorrupt, y, row[0])
		}
		for i := 4; i < rowSize; i += 4 {
			if row[i] != 0xff {
				return fmt.Errorf("%w: pixel (%d, %d) is not opaque", ErrCorrupt, (i-4)/4, y)
			}
		}
	}
	return nil
}
