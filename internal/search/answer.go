package search

import (
	"sort"
	"strconv"
	"strings"

	"word-cliques/internal/index"
)

// AnswerSet is a set of pairwise letter-disjoint masks whose union covers
// exactly count*length symbols. It is stored as an ascending mask
// sequence so that two answer sets with the same masks compare equal
// regardless of the order the search discovered them in.
type AnswerSet []index.Mask

// NewAnswerSet copies and canonically sorts a mask sequence.
func NewAnswerSet(masks []index.Mask) AnswerSet {
	a := make(AnswerSet, len(masks))
	copy(a, masks)
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	return a
}

// Key returns a canonical string form of the answer set, usable as a map
// key for structural dedup and as a cache key component.
func (a AnswerSet) Key() string {
	parts := make([]string, len(a))
	for i, m := range a {
		parts[i] = strconv.FormatUint(uint64(m), 16)
	}
	return strings.Join(parts, "-")
}

// Union returns the combined mask of the set.
func (a AnswerSet) Union() index.Mask {
	var u index.Mask
	for _, m := range a {
		u = u.Union(m)
	}
	return u
}

// Disjoint reports whether every pair of masks in the set is disjoint.
func (a AnswerSet) Disjoint() bool {
	var u index.Mask
	for _, m := range a {
		if !u.Disjoint(m) {
			return false
		}
		u = u.Union(m)
	}
	return true
}
