package main

import (
	"context"
	"log"
	"log/slog"

	"birdlift/app/archive"
	"birdlift/app/cfg"
	"birdlift/app/content"
	"birdlift/app/gotosocial"
	"birdlift/app/importer"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		// slog.SetLogLoggerLevel needs Go 1.22; route a debug-level handler
		// through the log package instead.
		slog.SetDefault(slog.New(slog.NewTextHandler(log.Writer(), &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	log.Printf("Starting birdlift %s...", appCfg.Version)
	if appCfg.DryRun {
		log.Println("Dry run: no API calls will be made")
	}

	tweets, err := archive.NewParser().Run(appCfg.ArchivePath)
	if err != nil {
		log.Fatalf("Failed to load archive: %v", err)
	}

	eligible := archive.NewFilterer().Run(tweets)
	slog.Info("Tweets filtered", "total", len(tweets), "eligible", len(eligible))

	if appCfg.Limit > 0 && len(eligible) > appCfg.Limit {
		slog.Info("Applying import limit", "limit", appCfg.Limit)
		eligible = eligible[:appCfg.Limit]
	}

	client := gotosocial.NewClient(appCfg.URL, appCfg.AccessToken)
	locator := content.NewLocator(appCfg.MediaDir)
	runner := importer.NewImporter(client, locator, appCfg.Visibility, appCfg.Delay, appCfg.DryRun)

	report := runner.Run(context.Background(), eligible)

	log.Printf("Import complete: %d tweets processed, %d imported, %d failed, %d media uploaded, %d media missing, %d media failed",
		report.Total, report.Imported, report.Failed,
		report.MediaUploaded, report.MediaMissing, report.MediaFailed)
}
