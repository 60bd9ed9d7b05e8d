package preprocess

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStopwordFile creates a small stopword list in a temp dir so tests
// never touch the repo wordlist or its FST.
func writeStopwordFile(t *testing.T, words ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stopwords.txt")
	content := "# test list\n"
	for _, w := range words {
		content += w + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStopwordSet_Contains(t *testing.T) {
	path := writeStopwordFile(t, "the", "a", "and")

	set, err := NewStopwordSet(path)
	require.NoError(t, err)
	defer set.Close()

	assert.True(t, set.Contains("the"))
	assert.True(t, set.Contains("THE"), "lookup is case-insensitive")
	assert.True(t, set.Contains("and"))
	assert.False(t, set.Contains("money"))
	assert.False(t, set.Contains(""))
	assert.Equal(t, 3, set.Len())
}

func TestStopwordSet_AddRemove(t *testing.T) {
	path := writeStopwordFile(t, "the")

	set, err := NewStopwordSet(path)
	require.NoError(t, err)
	defer set.Close()

	require.NoError(t, set.Add("Basically"))
	assert.True(t, set.Contains("basically"), "words are stored lowercase")
	assert.Equal(t, 2, set.Len())

	require.NoError(t, set.Remove("the"))
	assert.False(t, set.Contains("the"))
	assert.Equal(t, 1, set.Len())
}

func TestStopwordSet_PersistsAcrossReload(t *testing.T) {
	path := writeStopwordFile(t, "the")

	set, err := NewStopwordSet(path)
	require.NoError(t, err)
	require.NoError(t, set.Add("basically"))
	require.NoError(t, set.Close())

	reloaded, err := NewStopwordSet(path)
	require.NoError(t, err)
	defer reloaded.Close()

	assert.True(t, reloaded.Contains("basically"))
	assert.Equal(t, 2, reloaded.Len())
}

func TestStopwordSet_SkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\n\nthe\n\n# another\na\n"), 0o644))

	set, err := NewStopwordSet(path)
	require.NoError(t, err)
	defer set.Close()

	assert.Equal(t, 2, set.Len())
	assert.False(t, set.Contains("#"))
}

func TestStopwordSet_MissingFile(t *testing.T) {
	_, err := NewStopwordSet(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
