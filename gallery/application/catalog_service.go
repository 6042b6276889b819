package application

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dfryer1193/gallery/gallery/domain"
)

// DefaultExtensions are the image extensions included in the catalog.
var DefaultExtensions = []string{"jpg", "png", "webp"}

// CatalogService answers which images exist, using the canonical variant.
type CatalogService struct {
	variants   *domain.Variants
	store      domain.AssetStore
	extensions map[string]struct{}
}

// NewCatalogService builds a catalog over the canonical variant directory.
// Extensions are matched case-sensitively and may be given with or without
// a leading dot.
func NewCatalogService(variants *domain.Variants, store domain.AssetStore, extensions []string) *CatalogService {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			exts[ext] = struct{}{}
		}
	}

	return &CatalogService{
		variants:   variants,
		store:      store,
		extensions: exts,
	}
}

// ListCanonical returns the recognised image files of the canonical variant,
// sorted bytewise. The result is never nil on success.
func (s *CatalogService) ListCanonical(ctx context.Context) ([]string, error) {
	dir := s.variants.CanonicalDir()

	files, err := s.store.ListFiles(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list canonical images: %w", err)
	}

	images := make([]string, 0, len(files))
	for _, name := range files {
		if s.isImageFile(name) {
			images = append(images, name)
		}
	}

	slices.Sort(images)
	return slices.Compact(images), nil
}

func (s *CatalogService) isImageFile(name string) bool {
	ext := extension(name)
	if ext == "" {
		return false
	}
	_, ok := s.extensions[ext]
	return ok
}
