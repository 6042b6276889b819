package domain

import (
	"context"
	"errors"
)

var (
	// ErrDirectoryUnavailable means a variant directory could not be opened or enumerated.
	ErrDirectoryUnavailable = errors.New("directory unavailable")
	// ErrAssetNotFound means the requested file does not exist or is not a readable regular file.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrInvalidVariant is only returned when unknown size labels are rejected.
	ErrInvalidVariant = errors.New("invalid size variant")
)

// Asset is a single image file read from one variant directory.
type Asset struct {
	Filename    string
	Variant     SizeVariant
	ContentType string
	Content     []byte
}

type AssetStore interface {
	// ListFiles returns the basenames of the regular files directly inside dir.
	// It fails with ErrDirectoryUnavailable and no partial results.
	ListFiles(ctx context.Context, dir string) ([]string, error)

	// ReadFile reads dir/name fully. name must already be a plain basename.
	// It fails with ErrAssetNotFound when the file is missing or not a regular file.
	ReadFile(ctx context.Context, dir string, name string) ([]byte, error)
}
