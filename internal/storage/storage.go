// internal/storage/storage.go
package storage

import (
	"context"
	"io"
)

// Upload is a single incoming image file.
type Upload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// StoredImage locates an image after it has been persisted.
type StoredImage struct {
	URL string
	Key string
}

// ImageStore is the blob-storage collaborator projects save images through.
type ImageStore interface {
	Save(ctx context.Context, up Upload) (*StoredImage, error)
	Delete(ctx context.Context, key string) error
}
