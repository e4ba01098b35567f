// Package nbtfile is the file I/O collaborator around the NBT core: it reads
// and writes whole files, detects and applies stream compression, and leaves
// byte-level decoding to the nbt package.
package nbtfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/codec"
)

// ErrExists is returned by Save when the target exists and Overwrite is off.
var ErrExists = errors.New("nbtfile: file exists")

// Load reads an NBT file, decompressing it when a known compression magic is
// found, and decodes it into a tag tree. The returned codec is the one the
// file was compressed with, or nil for a raw file; Save can reuse it to
// write the file back the way it was found.
func Load(path string) (*nbt.Tag, codec.Codec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	c := codec.Detect(data)
	if c != nil {
		if data, err = c.Decompress(data); err != nil {
			return nil, nil, fmt.Errorf("nbtfile: %s: %w", path, err)
		}
	}

	root, err := nbt.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("nbtfile: %s: %w", path, err)
	}
	return root, c, nil
}

// Options controls Save behavior.
type Options struct {
	// Codec compresses the encoded buffer before writing. Nil writes raw
	// bytes; DefaultOptions uses gzip, the convention for standalone files.
	Codec codec.Codec

	// Overwrite permits replacing an existing file.
	Overwrite bool

	// Backup preserves the previous file as <path>.bak (numbered when taken)
	// while overwriting, restoring it if the write fails. Only meaningful
	// with Overwrite.
	Backup bool
}

// DefaultOptions returns the conventional save behavior: gzip compression,
// no overwrite.
func DefaultOptions() Options {
	return Options{Codec: codec.Gzip{}}
}

// Save encodes the tree and writes it to path per opts. On any failure after
// the old file was moved aside, the backup is restored and the partial file
// removed, so the previous state survives.
func Save(path string, root *nbt.Tag, opts Options) error {
	data, err := nbt.Encode(root)
	if err != nil {
		return fmt.Errorf("nbtfile: %s: %w", path, err)
	}
	if opts.Codec != nil {
		if data, err = opts.Codec.Compress(data); err != nil {
			return fmt.Errorf("nbtfile: %s: %w", path, err)
		}
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if exists && !opts.Overwrite {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}

	var backup string
	if exists && opts.Backup {
		backup = freeBackupPath(path + ".bak")
		if err := os.Rename(path, backup); err != nil {
			return fmt.Errorf("nbtfile: backup %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		// Drop the partial file and put the original back.
		_ = os.Remove(path)
		if backup != "" {
			_ = os.Rename(backup, path)
		}
		return fmt.Errorf("nbtfile: write %s: %w", path, err)
	}

	if backup != "" {
		_ = os.Remove(backup)
	}
	return nil
}

// freeBackupPath finds an unused name in the series base, base1, base2, ...
func freeBackupPath(base string) string {
	path := base
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = base + strconv.Itoa(n)
	}
}
