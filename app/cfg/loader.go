package cfg

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	// cmp.Or(Version, "unknown") spelled out for Go toolchains before 1.22.
	if Version != "" {
		return Version
	}
	return "unknown"
}

const (
	defaultArchivePath = "tweets.js"
	defaultMediaDir    = "tweets_media"
	defaultDelay       = 1
	defaultVisibility  = "public"
)

type rawCfg struct {
	// Destination server
	URL         string `short:"u" long:"url" env:"GTS_URL" description:"Base URL of the GoToSocial instance (e.g., https://social.example.com)"`
	AccessToken string `long:"token" env:"GTS_ACCESS_TOKEN" description:"Access token with write:media and write:statuses scopes"`

	// Archive input
	ArchivePath string `long:"archive" env:"ARCHIVE_PATH" default:"tweets.js" description:"Path to the tweets.js file from the archive export"`
	MediaDir    string `long:"media-dir" env:"MEDIA_DIR" default:"tweets_media" description:"Directory containing the archive's downloaded media files"`

	// Import behavior
	Delay      int    `long:"delay" env:"DELAY" default:"1" description:"Pause between API requests in seconds"`
	Visibility string `long:"visibility" env:"VISIBILITY" default:"public" description:"Visibility of imported statuses"`
	Limit      int    `long:"limit" env:"LIMIT" default:"0" description:"Import at most N eligible tweets (0 imports everything)"`
	DryRun     bool   `long:"dry-run" env:"DRY_RUN" description:"Walk the pipeline without calling the API"`

	// Application metadata
	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Optional YAML configuration file"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// fileCfg mirrors the flags that make sense in a config file, so the access
// token does not have to appear in argv or the environment.
type fileCfg struct {
	URL         string `yaml:"url"`
	AccessToken string `yaml:"access_token"`
	ArchivePath string `yaml:"archive"`
	MediaDir    string `yaml:"media_dir"`
	Delay       int    `yaml:"delay"`
	Visibility  string `yaml:"visibility"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		URL:         strings.TrimRight(raw.URL, "/"),
		AccessToken: raw.AccessToken,
		ArchivePath: raw.ArchivePath,
		MediaDir:    raw.MediaDir,
		Delay:       time.Duration(raw.Delay) * time.Second,
		Visibility:  raw.Visibility,
		Limit:       raw.Limit,
		DryRun:      raw.DryRun,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	if raw.ConfigFile != "" {
		if err := applyFile(cfg, raw.ConfigFile); err != nil {
			return nil, err
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// applyFile merges values from a YAML config file into cfg. Flags and
// environment variables take precedence: file values only fill fields that
// were left empty or at their default.
func applyFile(c *Cfg, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var f fileCfg
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if c.URL == "" {
		c.URL = strings.TrimRight(f.URL, "/")
	}
	if c.AccessToken == "" {
		c.AccessToken = f.AccessToken
	}
	if c.ArchivePath == defaultArchivePath && f.ArchivePath != "" {
		c.ArchivePath = f.ArchivePath
	}
	if c.MediaDir == defaultMediaDir && f.MediaDir != "" {
		c.MediaDir = f.MediaDir
	}
	if c.Delay == defaultDelay*time.Second && f.Delay != 0 {
		c.Delay = time.Duration(f.Delay) * time.Second
	}
	if c.Visibility == defaultVisibility && f.Visibility != "" {
		c.Visibility = f.Visibility
	}

	return nil
}

func validate(c *Cfg) error {
	if c.DryRun {
		return nil
	}
	if c.URL == "" {
		return fmt.Errorf("server URL is required (--url, GTS_URL or config file)")
	}
	if c.AccessToken == "" {
		return fmt.Errorf("access token is required (--token, GTS_ACCESS_TOKEN or config file)")
	}
	return nil
}
