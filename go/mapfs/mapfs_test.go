package mapfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFS(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "sub", "b.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(b), 0o755))
	require.NoError(t, os.WriteFile(a, []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("beta"), 0o644))

	m := make(MapFS)
	name, err := m.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "b.txt", name)
	_, err = m.Add(a)
	require.NoError(t, err)
	_, err = m.Add(a)
	require.NoError(t, err)

	_, err = m.Add(filepath.Join(dir, "other", "a.txt"))
	assert.Error(t, err)

	assert.Equal(t, []string{"a.txt", "b.txt"}, m.Names())

	data, err := fs.ReadFile(m, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "beta", string(data))

	_, err = m.Open("missing.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = m.Open("../a.txt")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	require.NoError(t, fstest.TestFS(m, "a.txt", "b.txt"))
}
