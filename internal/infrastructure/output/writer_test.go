package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddltools/uddlviz/internal/domain/schema"
)

func TestWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "diagram.mmd")

	require.NoError(t, Write(path, []byte("graph LR\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "graph LR\n", string(data))

	// No temp file litter.
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWrite_OverwritesExisting(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "diagram.mmd")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	require.NoError(t, Write(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWrite_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "diagram.mmd")

	err := Write(path, []byte("graph LR\n"))
	require.Error(t, err)

	var ioErr *schema.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, path, ioErr.Path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
