package persistence

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dfryer1193/gallery/gallery/domain"
)

var _ domain.AssetStore = (*FileAssetRepository)(nil)

// FileAssetRepository implements domain.AssetStore on the local filesystem.
// It holds no state; the filesystem is the only source of truth.
type FileAssetRepository struct{}

// NewAssetRepository creates a new FileAssetRepository
func NewAssetRepository() *FileAssetRepository {
	return &FileAssetRepository{}
}

// ListFiles enumerates the regular files in dir. Symlinks count when they
// point at a regular file.
func (r *FileAssetRepository) ListFiles(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDirectoryUnavailable, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !isRegular(dir, entry) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// ReadFile reads dir/name into memory.
func (r *FileAssetRepository) ReadFile(ctx context.Context, dir string, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !filepath.IsLocal(name) || filepath.Base(name) != name {
		return nil, fmt.Errorf("%w: %q is not a plain file name", domain.ErrAssetNotFound, name)
	}

	path := filepath.Join(dir, name)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrAssetNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", domain.ErrAssetNotFound, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", domain.ErrAssetNotFound, path, err)
	}

	return content, nil
}

func isRegular(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
