package search

import (
	"fmt"

	"word-cliques/internal/index"
)

// Partition is one independent slice of the search space: the subtree
// rooted at a fixed prefix of choices. Two partitions never share a
// prefix, so their subtrees are disjoint, and together the partitions of
// a given depth cover the whole space — every answer's first depth masks
// in canonical order form exactly one partition prefix.
type Partition struct {
	// Masks is the fixed prefix, in canonical candidate order.
	Masks []index.Mask

	// Union is the combined mask of the prefix.
	Union index.Mask

	// Cursor is the candidate index the completion must start at or
	// after; it sits just past the last prefix choice.
	Cursor int
}

// Partitions splits the search space by fixing the first depth choices.
// depth 1 yields one partition per viable first mask; depth 2 coarsens
// the split for load balancing across more workers than there are
// first-level candidates. depth must be smaller than the word count.
func (e *Engine) Partitions(depth int) ([]Partition, error) {
	if depth < 1 || depth >= e.count {
		return nil, fmt.Errorf("partition depth must be in [1, %d), got %d", e.count, depth)
	}

	var parts []Partition
	e.partition(nil, 0, 0, depth, &parts)
	return parts, nil
}

func (e *Engine) partition(prefix []index.Mask, union index.Mask, cursor, depth int, parts *[]Partition) {
	if len(prefix) == depth {
		*parts = append(*parts, Partition{
			Masks:  append([]index.Mask(nil), prefix...),
			Union:  union,
			Cursor: cursor,
		})
		return
	}

	remaining := e.count - len(prefix)
	for i := cursor; i <= len(e.candidates)-remaining; i++ {
		candidate := e.candidates[i]
		if !union.Disjoint(candidate) {
			continue
		}
		if union.Union(e.reach[i]).PopCount() < e.target {
			return
		}
		e.partition(append(prefix, candidate), union.Union(candidate), i+1, depth, parts)
	}
}
