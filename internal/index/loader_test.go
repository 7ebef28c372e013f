package index

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "words.txt")

	content := "vozhd\nwaqfs\n\n  clunk  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	words, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"vozhd", "waqfs", "clunk"}, words)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("grypt\nbemix\n"))
	}))
	defer srv.Close()

	words, err := Fetch(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"grypt", "bemix"}, words)
}

func TestFetch_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.Client(), srv.URL)
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lists [][]string
		want  []string
	}{
		{
			name:  "dedup across lists",
			lists: [][]string{{"vozhd", "waqfs"}, {"waqfs", "clunk"}},
			want:  []string{"clunk", "vozhd", "waqfs"},
		},
		{
			name:  "case folded before dedup",
			lists: [][]string{{"VOZHD"}, {"vozhd"}},
			want:  []string{"vozhd"},
		},
		{
			name:  "sorted regardless of input order",
			lists: [][]string{{"zulus", "abaca"}},
			want:  []string{"abaca", "zulus"},
		},
		{
			name:  "empty input",
			lists: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.lists...))
		})
	}
}
