package content

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"birdlift/app/archive"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

type Cleaner struct{}

func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Run rewrites a tweet's text for publishing: t.co short links become their
// expanded targets, media short links disappear entirely, and whitespace
// runs collapse to single spaces. Link expansion happens before media
// stripping, and both before the collapse, so no stray separators are left
// behind. The result is NFC-normalized.
func (c *Cleaner) Run(tweet archive.Tweet) string {
	text := tweet.FullText

	for _, entity := range tweet.Entities.URLs {
		expanded := entity.ExpandedURL
		if expanded == "" {
			expanded = entity.URL
		}
		text = strings.ReplaceAll(text, entity.URL, expanded)
	}

	for _, media := range tweet.Media() {
		text = strings.ReplaceAll(text, media.URL, "")
	}

	text = whitespaceRun.ReplaceAllString(text, " ")

	return norm.NFC.String(strings.TrimSpace(text))
}
