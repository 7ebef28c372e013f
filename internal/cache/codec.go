package cache

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sugawarayuuta/sonnet"

	"word-cliques/internal/index"
)

// CompletionList is the cached value type: every mask sequence that
// completes a given prefix into a full answer. Sequences are kept in
// ascending-mask order, so the set-valued payload has one canonical
// serialized form.
type CompletionList [][]index.Mask

// PrefixKey canonically encodes a chosen-mask prefix for use as a cache
// key component. Masks are hex encoded in choice order; the empty prefix
// encodes as "root".
func PrefixKey(masks []index.Mask) string {
	if len(masks) == 0 {
		return "root"
	}
	parts := make([]string, len(masks))
	for i, m := range masks {
		parts[i] = strconv.FormatUint(uint64(m), 16)
	}
	return strings.Join(parts, "-")
}

// encodeCompletions serializes a completion list as JSON arrays of mask
// values, sorted into canonical order first. JSON is a plain data
// encoding: decoding a stored payload can never execute anything.
func encodeCompletions(completions CompletionList) ([]byte, error) {
	canonical := make(CompletionList, len(completions))
	copy(canonical, completions)
	sort.Slice(canonical, func(i, j int) bool {
		return lessMaskSeq(canonical[i], canonical[j])
	})

	blob, err := sonnet.Marshal(canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion list: %w", err)
	}
	return blob, nil
}

func decodeCompletions(blob []byte) (CompletionList, error) {
	var completions CompletionList
	if err := sonnet.Unmarshal(blob, &completions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completion list: %w", err)
	}
	return completions, nil
}

func lessMaskSeq(a, b []index.Mask) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
