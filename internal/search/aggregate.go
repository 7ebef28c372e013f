package search

import (
	"sort"

	"word-cliques/internal/index"
)

// Aggregator merges answer sets coming out of the partitions into one
// deduplicated collection. Dedup is structural: two answer sets with the
// same masks are one answer regardless of which partition or ordering
// produced them. Not safe for concurrent use; the runner funnels all
// partitions through a single collector goroutine.
type Aggregator struct {
	seen map[string]AnswerSet
}

func NewAggregator() *Aggregator {
	return &Aggregator{seen: make(map[string]AnswerSet)}
}

// Add inserts an answer set, ignoring structural duplicates.
func (ag *Aggregator) Add(a AnswerSet) {
	key := a.Key()
	if _, ok := ag.seen[key]; !ok {
		ag.seen[key] = a
	}
}

// Len returns the number of distinct answer sets seen so far.
func (ag *Aggregator) Len() int {
	return len(ag.seen)
}

// Answers returns the distinct answer sets sorted by canonical key, so
// the aggregate is deterministic however partition results interleaved.
func (ag *Aggregator) Answers() []AnswerSet {
	answers := make([]AnswerSet, 0, len(ag.seen))
	for _, a := range ag.seen {
		answers = append(answers, a)
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].Key() < answers[j].Key() })
	return answers
}

// Expansion is the literal-word view of one answer set: the cross
// product of each mask's anagram class.
type Expansion struct {
	// Tuples holds every literal word tuple, one word per mask, each
	// tuple sorted alphabetically.
	Tuples [][]string

	// Ambiguous is true when more than one tuple exists, i.e. at least
	// one mask has several anagrams in the corpus.
	Ambiguous bool
}

// Expand resolves an answer set against the index it was computed from.
// A k-mask answer whose groups have sizes g1..gk expands to g1*...*gk
// tuples.
func Expand(a AnswerSet, ix *index.Index) Expansion {
	tuples := [][]string{nil}
	for _, m := range a {
		group := ix.Group(m)
		next := make([][]string, 0, len(tuples)*len(group))
		for _, tuple := range tuples {
			for _, word := range group {
				widened := make([]string, len(tuple), len(tuple)+1)
				copy(widened, tuple)
				next = append(next, append(widened, word))
			}
		}
		tuples = next
	}
	for _, tuple := range tuples {
		sort.Strings(tuple)
	}
	return Expansion{
		Tuples:    tuples,
		Ambiguous: len(tuples) > 1,
	}
}
