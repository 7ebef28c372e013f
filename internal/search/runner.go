package search

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"word-cliques/internal/cache"
	"word-cliques/internal/index"
)

// Runner executes the full search partitioned across a worker pool. Each
// worker owns its partitions exclusively: it is the only goroutine that
// reads or writes the cache keys under those prefixes, so no two writers
// ever touch the same key. The aggregate is a set, so worker completion
// order does not matter.
type Runner struct {
	Index *index.Index

	// Count is the number of words per answer set.
	Count int

	// Workers is the pool size; zero or negative means runtime.NumCPU().
	Workers int

	// Depth is the partition prefix depth, normally 1; raise it to split
	// the space finer than the first-level candidate count. Zero means 1.
	Depth int

	// Store enables persistent memoization when non-nil.
	Store *cache.Store

	// Progress receives human-readable status lines when non-nil.
	Progress func(string)
}

// Run enumerates every answer set. The result is identical to
// Engine.Enumerate over the same index and count; partitioning only
// changes how the work is scheduled.
func (r *Runner) Run(ctx context.Context) ([]AnswerSet, error) {
	engine, err := NewEngine(r.Index, r.Count)
	if err != nil {
		return nil, err
	}

	depth := r.Depth
	if depth == 0 {
		depth = 1
	}
	if r.Count == 1 {
		// Nothing to partition: the answer is the candidate list itself.
		return engine.Enumerate(), nil
	}

	partitions, err := engine.Partitions(depth)
	if err != nil {
		return nil, err
	}

	var fingerprint string
	if r.Store != nil {
		fingerprint = cache.Fingerprint(r.Index, r.Count)
	}

	r.progress(fmt.Sprintf("searching %d partitions (depth %d)", len(partitions), depth))

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	work := make(chan Partition, len(partitions))
	results := make(chan AnswerSet, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			return r.worker(ctx, engine, fingerprint, work, results)
		})
	}

	for _, p := range partitions {
		work <- p
	}
	close(work)

	aggregator := NewAggregator()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for answer := range results {
			aggregator.Add(answer)
		}
	}()

	if err := eg.Wait(); err != nil {
		close(results)
		<-done
		return nil, err
	}
	close(results)
	<-done

	r.progress(fmt.Sprintf("found %d answer sets", aggregator.Len()))
	return aggregator.Answers(), nil
}

// worker drains the partition channel, resolving each partition through
// the memoization wrapper and emitting one answer set per completion.
func (r *Runner) worker(ctx context.Context, engine *Engine, fingerprint string, work <-chan Partition, results chan<- AnswerSet) error {
	for p := range work {
		if err := ctx.Err(); err != nil {
			return err
		}

		completions, err := cache.Completions(r.Store, fingerprint, cache.PrefixKey(p.Masks),
			func() (cache.CompletionList, error) {
				return cache.CompletionList(engine.Complete(p.Union, len(p.Masks), p.Cursor)), nil
			})
		if err != nil {
			return fmt.Errorf("failed to resolve partition %s: %w", cache.PrefixKey(p.Masks), err)
		}

		for _, completion := range completions {
			full := make([]index.Mask, 0, len(p.Masks)+len(completion))
			full = append(full, p.Masks...)
			full = append(full, completion...)
			results <- NewAnswerSet(full)
		}
	}
	return nil
}

func (r *Runner) progress(msg string) {
	if r.Progress != nil {
		r.Progress(msg)
	}
}
