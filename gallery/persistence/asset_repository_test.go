package persistence

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dfryer1193/gallery/gallery/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestAssetRepository_ListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.jpg", "b")
	writeFile(t, dir, "a.png", "a")
	writeFile(t, dir, "notes.txt", "n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.jpg"), 0755))

	repo := NewAssetRepository()
	files, err := repo.ListFiles(context.Background(), dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.png", "b.jpg", "notes.txt"}, files)
}

func TestAssetRepository_ListFiles_FollowsSymlinkToFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}

	dir := t.TempDir()
	other := t.TempDir()
	writeFile(t, other, "target.jpg", "t")
	require.NoError(t, os.Symlink(filepath.Join(other, "target.jpg"), filepath.Join(dir, "link.jpg")))
	require.NoError(t, os.Symlink(other, filepath.Join(dir, "dirlink.jpg")))
	require.NoError(t, os.Symlink(filepath.Join(other, "gone.jpg"), filepath.Join(dir, "broken.jpg")))

	files, err := NewAssetRepository().ListFiles(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"link.jpg"}, files)
}

func TestAssetRepository_ListFiles_EmptyDirectory(t *testing.T) {
	files, err := NewAssetRepository().ListFiles(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestAssetRepository_ListFiles_Unavailable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.jpg", "x")

	tests := []struct {
		name string
		path string
	}{
		{name: "Missing directory", path: filepath.Join(dir, "missing")},
		{name: "Path is a file", path: filepath.Join(dir, "file.jpg")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := NewAssetRepository().ListFiles(context.Background(), tt.path)
			assert.ErrorIs(t, err, domain.ErrDirectoryUnavailable)
			assert.Nil(t, files)
		})
	}
}

func TestAssetRepository_ListFiles_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAssetRepository().ListFiles(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssetRepository_ReadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sunset.jpg", "sunset bytes")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder"), 0755))

	repo := NewAssetRepository()
	ctx := context.Background()

	content, err := repo.ReadFile(ctx, dir, "sunset.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("sunset bytes"), content)

	_, err = repo.ReadFile(ctx, dir, "missing.jpg")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)

	_, err = repo.ReadFile(ctx, dir, "folder")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestAssetRepository_ReadFile_RejectsPaths(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "small")
	require.NoError(t, os.Mkdir(dir, 0755))
	writeFile(t, root, "secret.jpg", "secret")

	for _, name := range []string{"../secret.jpg", "..", "sub/a.jpg", "", filepath.Join(root, "secret.jpg")} {
		t.Run(name, func(t *testing.T) {
			content, err := NewAssetRepository().ReadFile(context.Background(), dir, name)
			assert.ErrorIs(t, err, domain.ErrAssetNotFound)
			assert.Nil(t, content)
		})
	}
}
