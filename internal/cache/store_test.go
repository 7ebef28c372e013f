package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"word-cliques/internal/index"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_PutGetRoundtrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	completions := CompletionList{
		{index.Mask(12), index.Mask(48)},
		{index.Mask(3), index.Mask(192)},
	}
	require.NoError(t, store.PutCompletions("fp", "3", completions))

	got, ok, err := store.GetCompletions("fp", "3")
	require.NoError(t, err)
	require.True(t, ok)
	// Stored canonically sorted, smallest leading mask first.
	assert.Equal(t, CompletionList{
		{index.Mask(3), index.Mask(192)},
		{index.Mask(12), index.Mask(48)},
	}, got)
}

func TestStore_MissOnAbsentKey(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	_, ok, err := store.GetCompletions("fp", "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_FingerprintScopesKeys(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	require.NoError(t, store.PutCompletions("fp-old", "3", CompletionList{{index.Mask(1)}}))

	_, ok, err := store.GetCompletions("fp-new", "3")
	require.NoError(t, err)
	assert.False(t, ok, "an entry under another fingerprint is a miss, never a stale hit")
}

func TestStore_OverwriteReplacesValue(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	require.NoError(t, store.PutCompletions("fp", "3", CompletionList{{index.Mask(1)}}))
	require.NoError(t, store.PutCompletions("fp", "3", CompletionList{{index.Mask(2)}}))

	got, ok, err := store.GetCompletions("fp", "3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, CompletionList{{index.Mask(2)}}, got)

	count, err := store.CountEntries("fp")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_EmptyCompletionListRoundtrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	require.NoError(t, store.PutCompletions("fp", "dead-end", CompletionList{}))

	got, ok, err := store.GetCompletions("fp", "dead-end")
	require.NoError(t, err)
	assert.True(t, ok, "a cached empty completion list is a hit, not a miss")
	assert.Empty(t, got)
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.PutCompletions("fp", "3", CompletionList{{index.Mask(7)}}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.GetCompletions("fp", "3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, CompletionList{{index.Mask(7)}}, got)
}

func TestStore_RunRecords(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		Fingerprint: "fp",
		WordLength:  5,
		WordCount:   5,
		Duration:    1500 * time.Millisecond,
		Answers: []RunAnswer{
			{
				Masks:     []index.Mask{3, 12},
				Tuples:    [][]string{{"ab", "cd"}},
				Ambiguous: false,
			},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, 1500*time.Millisecond, runs[0].Duration)
	assert.Empty(t, runs[0].Answers, "list omits answer payloads")

	run, err := store.GetRun(id)
	require.NoError(t, err)
	require.NotNil(t, run)
	require.Len(t, run.Answers, 1)
	assert.Equal(t, []index.Mask{3, 12}, run.Answers[0].Masks)
	assert.Equal(t, [][]string{{"ab", "cd"}}, run.Answers[0].Tuples)

	count, err := store.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_GetRunUnknown(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	run, err := store.GetRun("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestPrefixKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "root", PrefixKey(nil))
	assert.Equal(t, "3", PrefixKey([]index.Mask{3}))
	assert.Equal(t, "3-c-30", PrefixKey([]index.Mask{3, 12, 48}))
}
