package search

import (
	"fmt"

	"word-cliques/internal/index"
)

// Engine enumerates every set of count pairwise-disjoint masks whose
// union has exactly count*length bits. Candidates are explored in the
// index's canonical ascending order with a strictly increasing cursor,
// so each mask set is produced exactly once, never as a permutation of
// itself.
type Engine struct {
	candidates []index.Mask
	count      int
	target     int

	// reach[i] is the union of candidates[i:]. If the current union plus
	// everything still reachable cannot cover target bits, the branch is
	// dead no matter what is chosen next.
	reach []index.Mask
}

// NewEngine builds an engine over the index's candidate masks. count is
// the number of words per answer; the coverage target is count times the
// word length.
func NewEngine(ix *index.Index, count int) (*Engine, error) {
	if count < 1 {
		return nil, fmt.Errorf("word count must be positive, got %d", count)
	}
	target := count * ix.Length
	if target > ix.Alphabet.Size() {
		return nil, fmt.Errorf("%d words of %d letters need %d symbols, alphabet has %d",
			count, ix.Length, target, ix.Alphabet.Size())
	}

	reach := make([]index.Mask, len(ix.Masks)+1)
	for i := len(ix.Masks) - 1; i >= 0; i-- {
		reach[i] = reach[i+1].Union(ix.Masks[i])
	}

	return &Engine{
		candidates: ix.Masks,
		count:      count,
		target:     target,
		reach:      reach,
	}, nil
}

// Candidates returns the canonical candidate mask order.
func (e *Engine) Candidates() []index.Mask {
	return e.candidates
}

// Enumerate runs the full single-threaded search and returns every
// answer set. An empty result is a valid outcome for a corpus that
// cannot reach full coverage.
func (e *Engine) Enumerate() []AnswerSet {
	var answers []AnswerSet
	for _, completion := range e.Complete(0, 0, 0) {
		answers = append(answers, NewAnswerSet(completion))
	}
	return answers
}

// Complete returns every valid completion of a prefix: the mask
// sequences that extend the given union to exactly target bits using
// candidates at index cursor or later. chosen is the number of masks
// already in the prefix. The returned sequences contain only the
// newly chosen masks, not the prefix.
func (e *Engine) Complete(union index.Mask, chosen, cursor int) [][]index.Mask {
	var out [][]index.Mask
	e.extend(nil, union, chosen, cursor, &out)
	return out
}

func (e *Engine) extend(suffix []index.Mask, union index.Mask, chosen, cursor int, out *[][]index.Mask) {
	if chosen == e.count {
		if union.PopCount() == e.target {
			*out = append(*out, append([]index.Mask(nil), suffix...))
		}
		return
	}

	remaining := e.count - chosen
	for i := cursor; i <= len(e.candidates)-remaining; i++ {
		candidate := e.candidates[i]
		if !union.Disjoint(candidate) {
			continue
		}
		// reach[i] only shrinks as i grows, so once the reachable union
		// cannot cover the target no later candidate can either.
		if union.Union(e.reach[i]).PopCount() < e.target {
			return
		}
		e.extend(append(suffix, candidate), union.Union(candidate), chosen+1, i+1, out)
	}
}
