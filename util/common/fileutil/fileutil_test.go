package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harness/pubcheck/util/common/errors"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.md")

	require.NoError(t, WriteFile(path, []byte("# report\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# report\n", string(data))

	assert.True(t, IsFile(path))
	assert.True(t, IsDir(filepath.Dir(path)))
	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".write_test*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWriteFileIgnoresStaleWriteTestFile(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, ".write_test")
	require.NoError(t, os.WriteFile(stale, nil, 0o644))

	require.NoError(t, WriteFile(filepath.Join(dir, "report.md"), []byte("x")))
	assert.True(t, IsFile(filepath.Join(dir, "report.md")))
	assert.True(t, Exists(stale))
}

func TestWriteFileInvalidPath(t *testing.T) {
	var ve *errors.ValidationError
	assert.True(t, errors.As(WriteFile("", nil), &ve))
	assert.True(t, errors.As(WriteFile(filepath.Join(t.TempDir(), "a:b.md"), nil), &ve))
}

func TestWriteFileBlockedDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WriteFile(filepath.Join(blocker, "report.md"), []byte("x"))
	var fe *errors.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "create_dir", fe.Op)
}
