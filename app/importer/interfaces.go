package importer

import (
	"context"

	"birdlift/app/gotosocial"
)

// Publisher is the slice of the GoToSocial client the importer needs.
type Publisher interface {
	UploadMedia(ctx context.Context, path, description string) (string, error)
	CreateStatus(ctx context.Context, status gotosocial.Status) error
}
