package assethashmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHashMap() HashMap {
	return HashMap{
		"css/site.css": "bbbb",
		"app.js":       "aaaa",
		"img/logo.png": "cccc",
		"copy/app.js":  "aaaa",
	}
}

func TestManifestSortedView(t *testing.T) {
	manifest := NewManifest(sampleHashMap(), HashSHA1)

	assert.Equal(t, 4, manifest.Len())
	assert.Equal(t, []string{"app.js", "copy/app.js", "css/site.css", "img/logo.png"}, manifest.Keys())

	hash, ok := manifest.Get("css/site.css")
	assert.True(t, ok)
	assert.Equal(t, "bbbb", hash)

	_, ok = manifest.Get("missing")
	assert.False(t, ok)

	assert.True(t, manifest.IsDuplicate("app.js"))
	assert.True(t, manifest.IsDuplicate("copy/app.js"))
	assert.False(t, manifest.IsDuplicate("css/site.css"))
	assert.False(t, manifest.IsDuplicate("missing"))
}

func TestManifestForEachStops(t *testing.T) {
	manifest := NewManifest(sampleHashMap(), HashSHA1)

	var seen []string
	manifest.ForEach(func(key, _ string) bool {
		seen = append(seen, key)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"app.js", "copy/app.js"}, seen)
}

func TestManifestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewManifest(sampleHashMap(), HashSHA1).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	expected := "aaaa  app.js\n" +
		"aaaa  copy/app.js\n" +
		"bbbb  css/site.css\n" +
		"cccc  img/logo.png\n"
	assert.Equal(t, expected, buf.String())
}

func TestManifestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewManifest(sampleHashMap(), HashSHA1).WriteJSON(&buf))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]string(sampleHashMap()), decoded)
	assert.True(t, strings.Index(buf.String(), "app.js") < strings.Index(buf.String(), "img/logo.png"))
}

func TestManifestWriteFileMatchesWriteTo(t *testing.T) {
	// More lines than one writev call takes
	hashes := make(HashMap)
	for i := 0; i < 2*fallbackIOVMax+7; i++ {
		hashes[fmt.Sprintf("dir/file-%05d.txt", i)] = fmt.Sprintf("%040x", i)
	}
	manifest := NewManifest(hashes, HashSHA1)

	path := filepath.Join(t.TempDir(), "manifest.txt")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, manifest.WriteFile(file, FormatShasum))
	require.NoError(t, file.Close())

	written, err := os.ReadFile(path)
	require.NoError(t, err)

	var expected bytes.Buffer
	_, err = manifest.WriteTo(&expected)
	require.NoError(t, err)
	assert.Equal(t, expected.String(), string(written))
}

func TestManifestWriteFileJSONAndInvalidFormat(t *testing.T) {
	manifest := NewManifest(sampleHashMap(), HashSHA1)
	dir := t.TempDir()

	file, err := os.Create(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	require.NoError(t, manifest.WriteFile(file, FormatJSON))
	require.NoError(t, file.Close())

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	file, err = os.Create(filepath.Join(dir, "manifest.xml"))
	require.NoError(t, err)
	defer file.Close()
	assert.Error(t, manifest.WriteFile(file, "xml"))
}

func TestManifestEmpty(t *testing.T) {
	manifest := NewManifest(HashMap{}, HashSHA1)
	assert.Equal(t, 0, manifest.Len())

	path := filepath.Join(t.TempDir(), "empty.txt")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, manifest.WriteFile(file, FormatShasum))
	require.NoError(t, file.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}
