package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	base := t.TempDir()
	r, err := NewResolver(base)
	require.NoError(t, err)
	return NewService(r), base
}

func TestList_SortsFoldersFirstThenName(t *testing.T) {
	s, base := newTestService(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(base, "b.txt"), []byte("b"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "A"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "a.txt"), []byte("a"), 0644))

	entries, err := s.List(ctx, "/")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "A", entries[0].Name)
	assert.Equal(t, EntryTypeFolder, entries[0].Type)
	assert.Nil(t, entries[0].Size)
	assert.Nil(t, entries[0].Extension)

	assert.Equal(t, "a.txt", entries[1].Name)
	assert.Equal(t, EntryTypeFile, entries[1].Type)
	require.NotNil(t, entries[1].Size)
	assert.Equal(t, int64(1), *entries[1].Size)
	require.NotNil(t, entries[1].Extension)
	assert.Equal(t, ".txt", *entries[1].Extension)

	assert.Equal(t, "b.txt", entries[2].Name)
}

func TestList_Idempotent(t *testing.T) {
	s, base := newTestService(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(base, "x.go"), []byte("package x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(base, "sub"), 0755))

	first, err := s.List(ctx, "/")
	require.NoError(t, err)
	second, err := s.List(ctx, "/")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestList_EmptyDirectory(t *testing.T) {
	s, base := newTestService(t)

	require.NoError(t, os.Mkdir(filepath.Join(base, "empty"), 0755))
	entries, err := s.List(context.Background(), "empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_ProvisionsMissingDirectory(t *testing.T) {
	s, base := newTestService(t)

	entries, err := s.List(context.Background(), "new/deep/path")
	require.NoError(t, err)
	assert.Empty(t, entries)

	info, err := os.Stat(filepath.Join(base, "new", "deep", "path"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestList_EscapeDenied(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.List(context.Background(), "../outside")
	assert.ErrorIs(t, err, common.ErrAccessDenied)
}

func TestList_LowercasesExtension(t *testing.T) {
	s, base := newTestService(t)

	require.NoError(t, os.WriteFile(filepath.Join(base, "PHOTO.JPG"), []byte("x"), 0644))
	entries, err := s.List(context.Background(), "/")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Extension)
	assert.Equal(t, ".jpg", *entries[0].Extension)
}

func TestSaveThenRead_RoundTrip(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	content := "package main\n\nfunc main() {}\n// ünïcödé ✓\n"
	require.NoError(t, s.SaveText(ctx, "main.go", content))

	got, name, ext, err := s.ReadText(ctx, "main.go")
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, "main.go", name)
	assert.Equal(t, ".go", ext)
}

func TestReadText_NotFound(t *testing.T) {
	s, _ := newTestService(t)

	_, _, _, err := s.ReadText(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveText_EscapeDeniedAndNothingWritten(t *testing.T) {
	s, base := newTestService(t)

	err := s.SaveText(context.Background(), "../evil.txt", "boom")
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(base), "evil.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestOpen_StreamsExistingFile(t *testing.T) {
	s, base := newTestService(t)

	require.NoError(t, os.WriteFile(filepath.Join(base, "raw.bin"), []byte{0, 1, 2}, 0644))

	f, info, err := s.Open(context.Background(), "raw.bin")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, int64(3), info.Size())
}

func TestOpen_NotFound(t *testing.T) {
	s, _ := newTestService(t)

	_, _, err := s.Open(context.Background(), "nope.bin")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestStat_ReturnsMetadata(t *testing.T) {
	s, base := newTestService(t)

	require.NoError(t, os.WriteFile(filepath.Join(base, "doc.PDF"), []byte("%PDF"), 0644))

	name, info, ext, err := s.Stat(context.Background(), "doc.PDF")
	require.NoError(t, err)
	assert.Equal(t, "doc.PDF", name)
	assert.Equal(t, int64(4), info.Size())
	assert.Equal(t, ".pdf", ext)
}
