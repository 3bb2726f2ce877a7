package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func defaultsCfg() *Cfg {
	return &Cfg{
		ArchivePath: defaultArchivePath,
		MediaDir:    defaultMediaDir,
		Delay:       defaultDelay * time.Second,
		Visibility:  defaultVisibility,
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "birdlift.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestApplyFile_FillsEmptyFields(t *testing.T) {
	cfg := defaultsCfg()

	path := writeConfigFile(t, `
url: https://social.example.com/
access_token: secret-token
archive: /backup/tweets.js
media_dir: /backup/tweets_media
delay: 3
visibility: unlisted
`)

	if err := applyFile(cfg, path); err != nil {
		t.Fatalf("applyFile failed: %v", err)
	}

	if cfg.URL != "https://social.example.com" {
		t.Errorf("Expected trailing slash trimmed from URL, got '%s'", cfg.URL)
	}
	if cfg.AccessToken != "secret-token" {
		t.Errorf("Expected access token from file, got '%s'", cfg.AccessToken)
	}
	if cfg.ArchivePath != "/backup/tweets.js" {
		t.Errorf("Expected archive path from file, got '%s'", cfg.ArchivePath)
	}
	if cfg.MediaDir != "/backup/tweets_media" {
		t.Errorf("Expected media dir from file, got '%s'", cfg.MediaDir)
	}
	if cfg.Delay != 3*time.Second {
		t.Errorf("Expected delay 3s from file, got %v", cfg.Delay)
	}
	if cfg.Visibility != "unlisted" {
		t.Errorf("Expected visibility 'unlisted' from file, got '%s'", cfg.Visibility)
	}
}

func TestApplyFile_FlagsTakePrecedence(t *testing.T) {
	cfg := &Cfg{
		URL:         "https://flags.example.com",
		AccessToken: "flag-token",
		ArchivePath: "/somewhere/else/tweets.js",
		MediaDir:    defaultMediaDir,
		Delay:       10 * time.Second,
		Visibility:  defaultVisibility,
	}

	path := writeConfigFile(t, `
url: https://file.example.com
access_token: file-token
archive: /file/tweets.js
delay: 2
`)

	if err := applyFile(cfg, path); err != nil {
		t.Fatalf("applyFile failed: %v", err)
	}

	if cfg.URL != "https://flags.example.com" {
		t.Errorf("Flag URL should win over file, got '%s'", cfg.URL)
	}
	if cfg.AccessToken != "flag-token" {
		t.Errorf("Flag token should win over file, got '%s'", cfg.AccessToken)
	}
	if cfg.ArchivePath != "/somewhere/else/tweets.js" {
		t.Errorf("Non-default archive path should win over file, got '%s'", cfg.ArchivePath)
	}
	if cfg.Delay != 10*time.Second {
		t.Errorf("Non-default delay should win over file, got %v", cfg.Delay)
	}
}

func TestApplyFile_MissingFile(t *testing.T) {
	cfg := defaultsCfg()

	err := applyFile(cfg, filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestApplyFile_InvalidYAML(t *testing.T) {
	cfg := defaultsCfg()

	path := writeConfigFile(t, "url: [unclosed")
	if err := applyFile(cfg, path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Cfg
		wantErr bool
	}{
		{"complete", Cfg{URL: "https://social.example.com", AccessToken: "tok"}, false},
		{"missing URL", Cfg{AccessToken: "tok"}, true},
		{"missing token", Cfg{URL: "https://social.example.com"}, true},
		{"dry run needs neither", Cfg{DryRun: true}, false},
	}

	for _, test := range tests {
		err := validate(&test.cfg)
		if test.wantErr && err == nil {
			t.Errorf("%s: expected validation error", test.name)
		}
		if !test.wantErr && err != nil {
			t.Errorf("%s: unexpected validation error: %v", test.name, err)
		}
	}
}
