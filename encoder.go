package houtveilig

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// Signature is the magic prefix of every PNG file.
const Signature = "\x89PNG\r\n\x1a\n"

// Chunk type tags written by the encoder.
const (
	TagHeader  = "IHDR"
	TagData    = "IDAT"
	TagTrailer = "IEND"
)

// Header field values for 8 bit per channel, non-interlaced RGBA.
const (
	BitDepth      = 8
	ColorTypeRGBA = 6
)

const (
	headerLen       = 13
	chunkOverhead   = 12 // length, tag and checksum
	maxChunkPayload = 1<<31 - 1
)

// Header is the payload of the image header chunk.
type Header struct {
	Width, Height uint32
	BitDepth      uint8
	ColorType     uint8
	Compression   uint8
	Filter        uint8
	Interlace     uint8
}

// NewHeader returns the header of a width*height RGBA image.
func NewHeader(width, height int) Header {
	return Header{
		Width:     uint32(width),
		Height:    uint32(height),
		BitDepth:  BitDepth,
		ColorType: ColorTypeRGBA,
	}
}

// Bytes returns the 13 byte big-endian encoding of the header.
func (h Header) Bytes() []byte {
	b := make([]byte, headerLen)
	binary.BigEndian.PutUint32(b[0:4], h.Width)
	binary.BigEndian.PutUint32(b[4:8], h.Height)
	b[8] = h.BitDepth
	b[9] = h.ColorType
	b[10] = h.Compression
	b[11] = h.Filter
	b[12] = h.Interlace
	return b
}

// ParseHeader decodes the payload of an image header chunk.
func ParseHeader(b []byte) (Header, error) {
	if len(b) != headerLen {
		return Header{}, fmt.Errorf("%w: header payload has %d bytes", ErrCorrupt, len(b))
	}
	return Header{
		Width:       binary.BigEndian.Uint32(b[0:4]),
		Height:      binary.BigEndian.Uint32(b[4:8]),
		BitDepth:    b[8],
		ColorType:   b[9],
		Compression: b[10],
		Filter:      b[11],
		Interlace:   b[12],
	}, nil
}

// Chunk is a length-prefixed, tagged and checksummed block of a PNG file.
type Chunk struct {
	Tag     string
	Payload []byte
	CRC     uint32
}

// checksum computes the CRC-32 of the tag followed by the payload.
func checksum(tag string, payload []byte) uint32 {
	crc := crc32.NewIEEE()
	io.WriteString(crc, tag)
	crc.Write(payload)
	return crc.Sum32()
}

// WriteChunk writes a single chunk: the payload length, the tag, the payload
// and the checksum over tag and payload, all integers big-endian.
func WriteChunk(w io.Writer, tag string, payload []byte) error {
	if len(tag) != 4 {
		return fmt.Errorf("chunk tag %q should have 4 bytes", tag)
	}
	if len(payload) > maxChunkPayload {
		return fmt.Errorf("%s chunk payload of %d bytes exceeds the maximum chunk size", tag, len(payload))
	}
	var tmp [8]byte
	binary.BigEndian.PutUint32(tmp[:4], uint32(len(payload)))
	copy(tmp[4:], tag)
	if _, err := w.Write(tmp[:8]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(tmp[:4], checksum(tag, payload))
	_, err := w.Write(tmp[:4])
	return err
}

// Encode writes the signature followed by the header, data and trailer chunks
// of a width*height image whose compressed scanlines are data.
// The output depends only on its arguments.
func Encode(w io.Writer, width, height int, data []byte) error {
	if _, err := io.WriteString(w, Signature); err != nil {
		return err
	}
	if err := WriteChunk(w, TagHeader, NewHeader(width, height).Bytes()); err != nil {
		return err
	}
	if err := WriteChunk(w, TagData, data); err != nil {
		return err
	}
	return WriteChunk(w, TagTrailer, nil)
}

// EncodeBytes is like Encode but returns the file contents.
func EncodeBytes(width, height int, data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(Signature) + 3*chunkOverhead + headerLen + len(data))

	// Writes to a bytes.Buffer never fail.
	_ = Encode(&buf, width, height, data)
	return buf.Bytes()
}

// ReadChunks splits a PNG file into its chunks, checking the signature and every checksum.
func ReadChunks(data []byte) ([]Chunk, error) {
	if !bytes.HasPrefix(data, []byte(Signature)) {
		return nil, fmt.Errorf("%w: missing signature", ErrCorrupt)
	}
	var chunks []Chunk

	rest := data[len(Signature):]
	for len(rest) > 0 {
		if len(rest) < chunkOverhead {
			return nil, fmt.Errorf("%w: truncated chunk", ErrCorrupt)
		}
		n := binary.BigEndian.Uint32(rest[:4])
		if uint64(n)+chunkOverhead > uint64(len(rest)) {
			return nil, fmt.Errorf("%w: chunk length %d exceeds file size", ErrCorrupt, n)
		}
		tag := string(rest[4:8])
		payload := rest[8 : 8+n]
		crc := binary.BigEndian.Uint32(rest[8+n : 12+n])
		if want := checksum(tag, payload); crc != want {
			return nil, fmt.Errorf("%w: %s checksum mismatch: got %08x, want %08x", ErrCorrupt, tag, crc, want)
		}
		chunks = append(chunks, Chunk{Tag: tag, Payload: payload, CRC: crc})
		rest = rest[12+n:]
	}
	return chunks, nil
}
