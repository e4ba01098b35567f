// Package codec provides the stream compression collaborators invoked around
// the NBT core: decompression before Decode, optional compression after
// Encode. The core itself never sees compressed bytes.
//
// Game saves are conventionally gzip-compressed; region chunk payloads use
// zlib. Detect sniffs magic bytes to pick the right codec for a buffer.
package codec

import "fmt"

// Codec compresses and decompresses whole byte buffers.
type Codec interface {
	// Name identifies the codec ("gzip", "zlib", "brotli", "none").
	Name() string

	// Sniff reports whether data starts with this codec's magic bytes.
	// Codecs without a magic prefix always report false.
	Sniff(data []byte) bool

	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress returns the decompressed form of data.
	Decompress(data []byte) ([]byte, error)
}

// registry holds the known codecs in sniff order.
var registry = []Codec{Gzip{}, Zlib{}, Brotli{}, None{}}

// Detect returns the codec whose magic matches data, or nil when data looks
// like a raw NBT buffer. Brotli carries no magic and is never detected; it
// must be chosen explicitly.
func Detect(data []byte) Codec {
	for _, c := range registry {
		if c.Sniff(data) {
			return c
		}
	}
	return nil
}

// IsCompressed reports whether data starts with a known compression magic.
func IsCompressed(data []byte) bool {
	return Detect(data) != nil
}

// Lookup returns the codec with the given name.
func Lookup(name string) (Codec, error) {
	for _, c := range registry {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("codec: unknown codec %q", name)
}

// Names returns the registered codec names in sniff order.
func Names() []string {
	out := make([]string, len(registry))
	for i, c := range registry {
		out[i] = c.Name()
	}
	return out
}

// None is the identity codec for uncompressed buffers.
type None struct{}

func (None) Name() string                           { return "none" }
func (None) Sniff([]byte) bool                      { return false }
func (None) Compress(data []byte) ([]byte, error)   { return data, nil }
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }
