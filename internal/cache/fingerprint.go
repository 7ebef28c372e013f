package cache

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"word-cliques/internal/index"
)

// Fingerprint derives the cache namespace for one parameter set: word
// count, word length, alphabet and the full corpus content all feed the
// hash, so changing any of them makes every old entry unreachable. The
// index's groups are sorted, which keeps the fingerprint independent of
// the order words arrived in.
func Fingerprint(ix *index.Index, count int) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(h, "count=%d\n", count)
	fmt.Fprintf(h, "length=%d\n", ix.Length)
	fmt.Fprintf(h, "alphabet=%s\n", ix.Alphabet.Symbols())
	for _, m := range ix.Masks {
		for _, word := range ix.Group(m) {
			fmt.Fprintf(h, "word=%s\n", word)
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
