package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"birdlift/app/archive"
	"birdlift/app/content"
	"birdlift/app/gotosocial"
)

// Importer publishes eligible tweets one after another. Everything is
// strictly sequential: one tweet completes (or fails) before the next
// starts, and media uploads within a tweet run in attachment order.
type Importer struct {
	publisher  Publisher
	cleaner    *content.Cleaner
	locator    *content.Locator
	visibility string
	delay      time.Duration
	dryRun     bool
}

func NewImporter(publisher Publisher, locator *content.Locator, visibility string, delay time.Duration, dryRun bool) *Importer {
	return &Importer{
		publisher:  publisher,
		cleaner:    content.NewCleaner(),
		locator:    locator,
		visibility: visibility,
		delay:      delay,
		dryRun:     dryRun,
	}
}

// Run imports the given tweets in order and returns the batch report. No
// tweet's failure aborts the batch.
func (i *Importer) Run(ctx context.Context, tweets []archive.Tweet) *Report {
	report := &Report{}

	for _, tweet := range tweets {
		result := i.importTweet(ctx, tweet)
		report.add(result)

		if result.Status == StatusFailed {
			slog.Error("Tweet import failed", "tweet", result.TweetID, "reason", result.Reason)
		}

		if ctx.Err() != nil {
			break
		}
	}

	slog.Info("Import finished",
		"total", report.Total,
		"imported", report.Imported,
		"failed", report.Failed,
		"media_uploaded", report.MediaUploaded,
		"media_missing", report.MediaMissing,
		"media_failed", report.MediaFailed)

	return report
}

func (i *Importer) importTweet(ctx context.Context, tweet archive.Tweet) Result {
	result := Result{TweetID: tweet.ID}

	text := i.cleaner.Run(tweet)

	files, missing := i.locator.Run(tweet)
	result.MediaMissing = len(missing)

	createdAt, err := tweet.CreatedAtTime()
	if err != nil {
		result.Status = StatusFailed
		result.Reason = fmt.Sprintf("unparseable created_at %q: %v", tweet.CreatedAt, err)
		return result
	}

	if i.dryRun {
		slog.Info("Dry run, not publishing",
			"tweet", tweet.ID,
			"text", text,
			"media", len(files),
			"media_missing", len(missing))
		result.Status = StatusDryRun
		return result
	}

	mediaIDs := make([]string, 0, len(files))
	for _, file := range files {
		mediaID, err := i.publisher.UploadMedia(ctx, file.Path, file.Description)
		if err != nil {
			// Soft failure: drop the attachment, keep the tweet
			slog.Error("Media upload failed", "tweet", tweet.ID, "file", file.Path, "error", err)
			result.MediaFailed++
			continue
		}

		mediaIDs = append(mediaIDs, mediaID)
		result.MediaUploaded++
		i.pause(ctx)
	}

	status := gotosocial.Status{
		Status:      text,
		ScheduledAt: createdAt.Format(time.RFC3339),
		Visibility:  i.visibility,
		MediaIDs:    mediaIDs,
	}

	err = i.publisher.CreateStatus(ctx, status)
	i.pause(ctx)
	if err != nil {
		result.Status = StatusFailed
		result.Reason = err.Error()
		return result
	}

	slog.Info("Tweet imported", "tweet", tweet.ID, "media", len(mediaIDs))
	result.Status = StatusImported

	return result
}

// pause sleeps the configured inter-request delay, returning early when the
// context is canceled.
func (i *Importer) pause(ctx context.Context) {
	if i.delay <= 0 {
		return
	}

	select {
	case <-ctx.Done():
	case <-time.After(i.delay):
	}
}
