package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// jsPrefix is the JavaScript assignment the export puts in front of the
// actual JSON array.
const jsPrefix = "window.YTD.tweets.part"

// missingCommaPattern matches two adjacent object literals with no separator
// between them, a malformation seen in real exports where array elements
// lost their commas.
var missingCommaPattern = regexp.MustCompile(`}\s*{`)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Run reads a tweets.js file and returns the tweets it contains, in file
// order. A document that still fails to parse after repair is fatal.
func (p *Parser) Run(path string) ([]Tweet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	repaired := Repair(string(data))

	var entries []Entry
	if err := json.Unmarshal([]byte(repaired), &entries); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("failed to parse archive at offset %d: %w", syntaxErr.Offset, err)
		}
		return nil, fmt.Errorf("failed to parse archive: %w", err)
	}

	tweets := make([]Tweet, 0, len(entries))
	for _, entry := range entries {
		tweets = append(tweets, entry.Tweet)
	}

	slog.Info("Archive loaded", "path", path, "tweets", len(tweets))

	return tweets, nil
}

// Repair recovers the JSON array embedded in a tweets.js export: the
// JavaScript assignment prefix is dropped (everything up to and including
// the first '=') and missing commas between adjacent array elements are
// reinserted. Kept separate from parsing so the heuristic can be tested and
// replaced on its own if the export format changes.
func Repair(content string) string {
	if strings.HasPrefix(content, jsPrefix) {
		if _, rest, ok := strings.Cut(content, "="); ok {
			content = strings.TrimSpace(rest)
		}
	}

	return missingCommaPattern.ReplaceAllString(content, "},{")
}
