// Package archive builds in-memory zip containers with maximal deflate
// compression for multi-document exports.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Builder accumulates named entries into one compressed zip buffer.
type Builder struct {
	buf bytes.Buffer
	zw  *zip.Writer
}

func NewBuilder() *Builder {
	b := &Builder{}
	b.zw = zip.NewWriter(&b.buf)
	b.zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})
	return b
}

// Add writes one named entry.
func (b *Builder) Add(name string, data []byte) error {
	w, err := b.zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create archive entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", name, err)
	}
	return nil
}

// Bytes finalizes the archive and returns its contents. The builder is
// not reusable afterwards.
func (b *Builder) Bytes() ([]byte, error) {
	if err := b.zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return b.buf.Bytes(), nil
}
