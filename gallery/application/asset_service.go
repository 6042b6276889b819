package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/dfryer1193/gallery/gallery/domain"
	"github.com/rs/zerolog/log"
)

// AssetService resolves (size, filename) pairs to file contents.
type AssetService struct {
	variants *domain.Variants
	store    domain.AssetStore
}

func NewAssetService(variants *domain.Variants, store domain.AssetStore) *AssetService {
	return &AssetService{
		variants: variants,
		store:    store,
	}
}

// ResolveVariantDirectory maps a size label to one of the configured
// directories. Unknown labels resolve to the canonical directory unless the
// variants were configured to reject them.
func (s *AssetService) ResolveVariantDirectory(label string) (domain.SizeVariant, string, error) {
	variant := domain.SizeVariant(label)
	if dir, ok := s.variants.Lookup(variant); ok {
		return variant, dir, nil
	}

	if s.variants.Policy() == domain.RejectUnknown {
		return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidVariant, label)
	}

	log.Debug().Str("size", label).Msg("Unknown size label, serving canonical variant")
	return domain.Canonical, s.variants.CanonicalDir(), nil
}

// Serve reads a single asset. The filename must be a plain basename; anything
// that could escape the variant directory is reported as not found.
func (s *AssetService) Serve(ctx context.Context, label string, filename string) (*domain.Asset, error) {
	if err := validateFilename(filename); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAssetNotFound, err)
	}

	variant, dir, err := s.ResolveVariantDirectory(label)
	if err != nil {
		return nil, err
	}

	content, err := s.store.ReadFile(ctx, dir, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to serve %s/%s: %w", variant, filename, err)
	}

	return &domain.Asset{
		Filename:    filename,
		Variant:     variant,
		ContentType: ContentTypeFor(filename),
		Content:     content,
	}, nil
}

// Variants lists the configured size labels in declaration order.
func (s *AssetService) Variants() []domain.SizeVariant {
	return s.variants.Labels()
}

func validateFilename(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("file name cannot be empty")
	case name == "." || name == "..":
		return fmt.Errorf("file name %q is not allowed", name)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("file name %q must not contain path separators", name)
	}
	return nil
}
