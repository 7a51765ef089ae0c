// Package source abstracts where MetaNetX tables are read from.
//
// The ingestion pipeline only needs an ordered byte stream per named table;
// whether that stream comes from a local directory, an in-memory fixture or
// an object store (see the s3 and minio subpackages) is a deployment choice.
// Compressed tables are decompressed transparently, so callers always request
// the logical name ("reac_prop.tsv", never "reac_prop.tsv.gz").
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrNotFound is returned when a named table does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Opener provides read access to named source tables.
type Opener interface {
	// Open opens the table with the given logical name for reading.
	// The returned stream is already decompressed.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Gunzip wraps a compressed stream so that closing the result also closes
// the underlying stream.
func Gunzip(rc io.ReadCloser) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return &gzipStream{Reader: zr, raw: rc}, nil
}

type gzipStream struct {
	*gzip.Reader
	raw io.Closer
}

func (g *gzipStream) Close() error {
	err := g.Reader.Close()
	if cerr := g.raw.Close(); err == nil {
		err = cerr
	}
	return err
}

// Dir reads tables from a local directory. A plain file takes precedence;
// when it is absent a ".gz" sibling is opened and decompressed.
type Dir struct {
	root string
}

// NewDir creates a Dir rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Open opens a table from the directory.
func (d *Dir) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(d.root, name))
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	f, err = os.Open(filepath.Join(d.root, name+".gz"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("table %s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return Gunzip(f)
}

// Map serves tables from memory. It is primarily used in tests.
type Map map[string]string

// Open opens a table from the map.
func (m Map) Open(_ context.Context, name string) (io.ReadCloser, error) {
	content, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("table %s: %w", name, ErrNotFound)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}
