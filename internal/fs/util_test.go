package fs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveReplaces(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	dst := filepath.Join(dir, "dst.json")

	require.NoError(t, ioutil.WriteFile(src, []byte("new"), 0644))
	require.NoError(t, ioutil.WriteFile(dst, []byte("old"), 0644))

	err := Move(src, dst)
	require.NoError(t, err)

	data, err := ioutil.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestMoveMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Move(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	assert.Error(t, err)
}
