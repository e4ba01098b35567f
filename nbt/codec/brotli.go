package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// Brotli is an opt-in codec for archival storage of large trees. Brotli
// streams carry no magic prefix, so Detect never selects it; callers pick it
// by name.
type Brotli struct{}

func (Brotli) Name() string { return "brotli" }

func (Brotli) Sniff([]byte) bool { return false }

func (Brotli) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	w := brotli.NewWriter(&out)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("brotli: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli: %w", err)
	}
	return out.Bytes(), nil
}

func (Brotli) Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("brotli: %w", err)
	}
	return out, nil
}
