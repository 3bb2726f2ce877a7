package content

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"birdlift/app/archive"
)

// File is a media attachment resolved to a local file.
type File struct {
	Path        string
	Description string // alt text from the export, may be empty
}

type Locator struct {
	mediaDir string
}

func NewLocator(mediaDir string) *Locator {
	return &Locator{mediaDir: mediaDir}
}

// Run resolves a tweet's media attachments to local files, in attachment
// order. The archive names downloaded media "{tweet id}-{basename of the
// media URL}", sometimes with a different extension than the URL implies
// (video exports in particular), so matching is by name prefix; the first
// directory entry that matches wins. Attachments without a matching file
// are returned as missing prefixes and skipped, never treated as fatal.
func (l *Locator) Run(tweet archive.Tweet) ([]File, []string) {
	media := tweet.Media()
	if len(media) == 0 {
		return nil, nil
	}

	entries, err := os.ReadDir(l.mediaDir)
	if err != nil {
		slog.Warn("Media directory not readable", "dir", l.mediaDir, "error", err)
	}

	var located []File
	var missing []string

	for _, attachment := range media {
		prefix := fmt.Sprintf("%s-%s", tweet.ID, path.Base(attachment.MediaURL))

		name := firstMatch(entries, prefix)
		if name == "" {
			slog.Warn("Media file not found", "tweet", tweet.ID, "prefix", prefix)
			missing = append(missing, prefix)
			continue
		}

		located = append(located, File{
			Path:        filepath.Join(l.mediaDir, name),
			Description: attachment.AltText,
		})
	}

	return located, missing
}

func firstMatch(entries []os.DirEntry, prefix string) string {
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			return entry.Name()
		}
	}
	return ""
}
