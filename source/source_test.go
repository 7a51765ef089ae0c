package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "plain.tsv"), []byte("a\tb\n"), 0o644))

	f, err := os.Create(filepath.Join(root, "packed.tsv.gz"))
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("c\td\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	dir := NewDir(root)

	t.Run("PlainFile", func(t *testing.T) {
		rc, err := dir.Open(ctx, "plain.tsv")
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "a\tb\n", string(content))
	})

	t.Run("GzipFallback", func(t *testing.T) {
		rc, err := dir.Open(ctx, "packed.tsv")
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "c\td\n", string(content))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := dir.Open(ctx, "nope.tsv")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestMap(t *testing.T) {
	ctx := context.Background()
	m := Map{"comp_prop.tsv": "MNXC1\tcytosol\tGO:0005829\n"}

	rc, err := m.Open(ctx, "comp_prop.tsv")
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "MNXC1\tcytosol\tGO:0005829\n", string(content))

	_, err = m.Open(ctx, "reac_prop.tsv")
	assert.True(t, errors.Is(err, ErrNotFound))
}
