package connectors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.csv"), "a,b\n")
	writeFile(t, filepath.Join(root, "a.csv"), "a,b\n1,2\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(root, "sub", "c.csv"), "x,y\n")

	flat, err := DiscoverFiles(root, "csv", DiscoveryOptions{})
	require.NoError(t, err)
	require.Len(t, flat, 2)
	assert.Equal(t, filepath.Join(root, "a.csv"), flat[0].Path)
	assert.Equal(t, filepath.Join(root, "b.csv"), flat[1].Path)
	assert.Equal(t, int64(len("a,b\n1,2\n")), flat[0].Size)
	assert.False(t, flat[0].Modified.IsZero())

	deep, err := DiscoverFiles(root, "csv", DiscoveryOptions{Recursive: true})
	require.NoError(t, err)
	require.Len(t, deep, 3)
	assert.Equal(t, filepath.Join(root, "sub", "c.csv"), deep[2].Path)
}

func TestDiscoverFilesSizeFilters(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "small.csv"), "a\n")
	writeFile(t, filepath.Join(root, "large.csv"), "a,b,c,d,e,f,g,h\n1,2,3,4,5,6,7,8\n")

	files, err := DiscoverFiles(root, "csv", DiscoveryOptions{MinSize: 10})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "large.csv"), files[0].Path)

	files, err = DiscoverFiles(root, "csv", DiscoveryOptions{MaxSize: 5})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "small.csv"), files[0].Path)
}

func TestDiscoverFilesEmptyResult(t *testing.T) {
	t.Parallel()

	files, err := DiscoverFiles(t.TempDir(), "csv", DiscoveryOptions{})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverFilesBadInput(t *testing.T) {
	t.Parallel()

	_, err := DiscoverFiles("", "csv", DiscoveryOptions{})
	assert.Error(t, err)

	_, err = DiscoverFiles(filepath.Join(t.TempDir(), "missing"), "csv", DiscoveryOptions{})
	assert.Error(t, err)

	_, err = DiscoverFiles(t.TempDir(), "", DiscoveryOptions{})
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "plain.csv")
	writeFile(t, file, "a,b\n")
	_, err = DiscoverFiles(file, "csv", DiscoveryOptions{})
	assert.Error(t, err)
}
