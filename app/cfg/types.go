package cfg

import "time"

type Cfg struct {
	// Destination server
	URL         string
	AccessToken string

	// Archive input
	ArchivePath string
	MediaDir    string

	// Import behavior
	Delay      time.Duration
	Visibility string
	Limit      int
	DryRun     bool

	// Application metadata
	Debug   bool
	Version string
}
