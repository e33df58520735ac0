package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compressor applies zlib to every object uniformly. Loose objects on disk
// are always compressed; mixing raw and compressed files under the same
// layout would make reads ambiguous.
type Compressor struct {
	level int
}

func NewCompressor(level int) (*Compressor, error) {
	var zlibLevel int
	switch level {
	case 1:
		zlibLevel = zlib.BestSpeed
	case 2:
		zlibLevel = zlib.DefaultCompression
	case 3:
		zlibLevel = zlib.BestCompression
	default:
		zlibLevel = zlib.DefaultCompression
	}

	// Validate the level eagerly so Compress can't fail on config.
	if _, err := zlib.NewWriterLevel(io.Discard, zlibLevel); err != nil {
		return nil, err
	}

	return &Compressor{level: zlibLevel}, nil
}

func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decompressed, nil
}
