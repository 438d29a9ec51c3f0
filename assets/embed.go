// Package assets ships the default Lithuanian word lists inside the binary.
//
// Both files are plain text, one word per line, with "#" comment lines.
// solutions.txt holds the daily targets; allowed.txt holds the extra legal
// guesses (solutions are always legal too, the loader in internal/words
// unions them).
package assets

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed allowed.txt solutions.txt
var files embed.FS

// SolutionsList returns the embedded daily-target words, lowercased.
func SolutionsList() ([]string, error) { return read("solutions.txt") }

// AllowedList returns the embedded extra guess words, lowercased.
func AllowedList() ([]string, error) { return read("allowed.txt") }

// read loads one embedded list, skipping blanks and comment lines.
func read(name string) ([]string, error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return words, nil
}
