package search

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"word-cliques/internal/index"
)

// WriteTextFile writes the expanded answers to a plain text file, one
// literal word tuple per line. Tuples from an anagram-ambiguous answer
// set carry a trailing marker. Lines are sorted for stable output.
func WriteTextFile(answers []AnswerSet, ix *index.Index, outputPath string) error {
	var lines []string
	for _, a := range answers {
		expansion := Expand(a, ix)
		for _, tuple := range expansion.Tuples {
			line := strings.Join(tuple, " ")
			if expansion.Ambiguous {
				line += " [anagram-ambiguous]"
			}
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write answers file: %w", err)
	}
	return nil
}
