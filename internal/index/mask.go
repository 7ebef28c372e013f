package index

import (
	"fmt"
	"math/bits"
	"strings"
)

// Mask is a bit vector over an alphabet: bit i is set when the word
// contains symbol i of the alphabet. Two words with the same mask are
// anagrams of each other as far as the search is concerned.
type Mask uint64

// PopCount returns the number of distinct symbols in the mask.
func (m Mask) PopCount() int {
	return bits.OnesCount64(uint64(m))
}

// Disjoint reports whether the two masks share no symbols.
func (m Mask) Disjoint(other Mask) bool {
	return m&other == 0
}

// Union returns the combination of both masks.
func (m Mask) Union(other Mask) Mask {
	return m | other
}

// Alphabet is an ordered set of symbols that defines the bit layout of a
// Mask. Symbol order is significant: it determines which bit each symbol
// maps to, so two alphabets with the same symbols in a different order
// produce incompatible masks.
type Alphabet struct {
	symbols string
	bits    map[rune]uint
}

// NewAlphabet builds an alphabet from an ordered symbol string.
// At most 64 distinct symbols fit in a Mask.
func NewAlphabet(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return Alphabet{}, fmt.Errorf("alphabet is empty")
	}
	if len(runes) > 64 {
		return Alphabet{}, fmt.Errorf("alphabet has %d symbols, maximum is 64", len(runes))
	}

	bitmap := make(map[rune]uint, len(runes))
	for i, r := range runes {
		if _, ok := bitmap[r]; ok {
			return Alphabet{}, fmt.Errorf("alphabet has duplicate symbol %q", r)
		}
		bitmap[r] = uint(i)
	}

	return Alphabet{symbols: symbols, bits: bitmap}, nil
}

// DefaultAlphabet returns the lowercase English alphabet.
func DefaultAlphabet() Alphabet {
	a, err := NewAlphabet("abcdefghijklmnopqrstuvwxyz")
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols in the alphabet.
func (a Alphabet) Size() int {
	return len(a.bits)
}

// Symbols returns the alphabet's symbols in bit order.
func (a Alphabet) Symbols() string {
	return a.symbols
}

// WordMask computes the mask of a word. It returns false when the word
// contains a symbol outside the alphabet or uses any symbol more than
// once; such words can never participate in a disjoint cover.
func (a Alphabet) WordMask(word string) (Mask, bool) {
	var mask Mask
	for _, r := range word {
		bit, ok := a.bits[r]
		if !ok {
			return 0, false
		}
		if mask&(1<<bit) != 0 {
			return 0, false
		}
		mask |= 1 << bit
	}
	return mask, true
}

// Letters renders a mask as its symbols in alphabet order, for logging
// and error messages.
func (a Alphabet) Letters(m Mask) string {
	var sb strings.Builder
	for i, r := range []rune(a.symbols) {
		if m&(1<<uint(i)) != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
