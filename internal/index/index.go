package index

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Index maps every admissible word of the corpus to its letter mask and
// groups words that share a mask into one anagram class. It is built once
// per corpus and never mutated afterwards; workers share one Index.
type Index struct {
	// Length is the word length every admitted word has.
	Length int

	// Alphabet defines the mask bit layout.
	Alphabet Alphabet

	// Masks holds every distinct mask in ascending numeric order. This is
	// the canonical candidate order the search iterates in.
	Masks []Mask

	// Groups maps each mask to its anagram class, sorted alphabetically.
	Groups map[Mask][]string
}

// Build constructs the index for words of the given length. Words are
// lowercased before masking. Words of the wrong length, words with
// symbols outside the alphabet and words with repeated letters are
// dropped silently: none of them can appear in a disjoint cover.
func Build(words []string, length int, alphabet Alphabet) *Index {
	groups := make(map[Mask][]string)

	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if utf8.RuneCountInString(word) != length {
			continue
		}
		mask, ok := alphabet.WordMask(word)
		if !ok {
			continue
		}
		groups[mask] = append(groups[mask], word)
	}

	masks := make([]Mask, 0, len(groups))
	for mask, members := range groups {
		sort.Strings(members)
		// The same literal word may appear in several merged source lists.
		groups[mask] = dedupSorted(members)
		masks = append(masks, mask)
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })

	return &Index{
		Length:   length,
		Alphabet: alphabet,
		Masks:    masks,
		Groups:   groups,
	}
}

// Group returns the anagram class of a mask, or nil when the mask is not
// in the index.
func (ix *Index) Group(m Mask) []string {
	return ix.Groups[m]
}

// WordCount returns the number of admitted literal words.
func (ix *Index) WordCount() int {
	n := 0
	for _, members := range ix.Groups {
		n += len(members)
	}
	return n
}

func dedupSorted(words []string) []string {
	out := words[:0]
	for i, w := range words {
		if i == 0 || w != words[i-1] {
			out = append(out, w)
		}
	}
	return out
}
