package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextFile(t *testing.T) {
	t.Parallel()

	ix := buildIndex(t, quintCorpus, 5)
	engine, err := NewEngine(ix, 5)
	require.NoError(t, err)
	answers := engine.Enumerate()
	require.Len(t, answers, 1)

	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, WriteTextFile(answers, ix, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bemix clunk grypt vozhd waqfs\n", string(content))
}

func TestWriteTextFile_AmbiguousMarker(t *testing.T) {
	t.Parallel()

	ix := buildIndex(t, []string{"xylic", "cylix", "abdef", "ghjkm", "nopqr", "stuvw"}, 5)
	engine, err := NewEngine(ix, 5)
	require.NoError(t, err)
	answers := engine.Enumerate()
	require.Len(t, answers, 1)

	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, WriteTextFile(answers, ix, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, 2, "two anagram tuples, one line each")
	for _, line := range lines {
		assert.Contains(t, line, "[anagram-ambiguous]")
	}
}

func TestWriteTextFile_NoAnswers(t *testing.T) {
	t.Parallel()

	ix := buildIndex(t, []string{"vozhd"}, 5)

	path := filepath.Join(t.TempDir(), "answers.txt")
	require.NoError(t, WriteTextFile(nil, ix, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)
}
