package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"word-cliques/internal/cache"
	"word-cliques/internal/index"
	"word-cliques/internal/search"
)

func main() {
	wordlists := flag.String("wordlist", "", "Comma-separated word list sources: file paths or http(s) URLs (required)")
	length := flag.Int("length", 5, "Word length")
	count := flag.Int("count", 5, "Number of letter-disjoint words per answer")
	alphabet := flag.String("alphabet", "abcdefghijklmnopqrstuvwxyz", "Alphabet symbols in bit order")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = all CPUs)")
	depth := flag.Int("depth", 1, "Partition prefix depth")
	cachePath := flag.String("cache", "", "Path to the cache database; empty disables caching")
	outputFile := flag.String("output", "answers.txt", "Output file path")
	flag.Parse()

	if *wordlists == "" {
		fmt.Fprintf(os.Stderr, "Error: --wordlist flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	programStart := time.Now()
	progress := func(msg string) {
		fmt.Printf("[%s] %s\n", formatElapsed(time.Since(programStart)), msg)
	}

	ctx := context.Background()

	corpus, err := loadCorpus(ctx, strings.Split(*wordlists, ","), progress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	ab, err := index.NewAlphabet(*alphabet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	ix := index.Build(corpus, *length, ab)
	progress(fmt.Sprintf("indexed %d words into %d anagram classes", ix.WordCount(), len(ix.Masks)))

	var store *cache.Store
	if *cachePath != "" {
		store, err = cache.Open(*cachePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	runner := &search.Runner{
		Index:    ix,
		Count:    *count,
		Workers:  *workers,
		Depth:    *depth,
		Store:    store,
		Progress: progress,
	}

	searchStart := time.Now()
	answers, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
	searchDuration := time.Since(searchStart)

	progress("writing output file...")
	if err := search.WriteTextFile(answers, ix, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "\nError writing output: %v\n", err)
		os.Exit(1)
	}

	if store != nil {
		id, err := saveRun(store, ix, *count, searchDuration, answers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError recording run: %v\n", err)
			os.Exit(1)
		}
		progress(fmt.Sprintf("recorded run %s", id))
	}

	fmt.Printf("\nDone.\n")
	fmt.Printf("  Answer sets found: %d\n", len(answers))
	fmt.Printf("  Search time: %s\n", searchDuration.Round(time.Millisecond))
	fmt.Printf("  Output file: %s\n", *outputFile)
}

// loadCorpus reads every source (file or URL) and merges them into one
// deduplicated corpus.
func loadCorpus(ctx context.Context, sources []string, progress func(string)) ([]string, error) {
	lists := make([][]string, 0, len(sources))
	for _, source := range sources {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}

		var (
			words []string
			err   error
		)
		if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			progress(fmt.Sprintf("fetching %s", source))
			words, err = index.Fetch(ctx, nil, source)
		} else {
			progress(fmt.Sprintf("reading %s", source))
			words, err = index.LoadFile(source)
		}
		if err != nil {
			return nil, err
		}
		lists = append(lists, words)
	}

	if len(lists) == 0 {
		return nil, fmt.Errorf("no word list sources given")
	}
	return index.Merge(lists...), nil
}

func saveRun(store *cache.Store, ix *index.Index, count int, duration time.Duration, answers []search.AnswerSet) (string, error) {
	runAnswers := make([]cache.RunAnswer, 0, len(answers))
	for _, a := range answers {
		expansion := search.Expand(a, ix)
		runAnswers = append(runAnswers, cache.RunAnswer{
			Masks:     a,
			Tuples:    expansion.Tuples,
			Ambiguous: expansion.Ambiguous,
		})
	}

	return store.SaveRun(cache.Run{
		Fingerprint: cache.Fingerprint(ix, count),
		WordLength:  ix.Length,
		WordCount:   count,
		Duration:    duration,
		Answers:     runAnswers,
	})
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
