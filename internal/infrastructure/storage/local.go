package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kinotek/catalog/internal/domain/video"
	"github.com/kinotek/catalog/pkg/logger"
)

// LocalStorage stores media resources under a base directory.
type LocalStorage struct {
	basePath string
	log      logger.Logger
}

// NewLocalStorage creates a local media resource gateway.
func NewLocalStorage(basePath string, log logger.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}
	return &LocalStorage{basePath: basePath, log: log}, nil
}

// StoreAudioVideo writes an audio-video asset and returns its descriptor.
func (s *LocalStorage) StoreAudioVideo(ctx context.Context, id video.ID, resource video.Resource) (video.AudioVideoMedia, error) {
	if err := s.write(id, resource); err != nil {
		return video.AudioVideoMedia{}, err
	}
	return audioVideoFor(id, resource), nil
}

// StoreImage writes an image asset and returns its descriptor.
func (s *LocalStorage) StoreImage(ctx context.Context, id video.ID, resource video.Resource) (video.ImageMedia, error) {
	if err := s.write(id, resource); err != nil {
		return video.ImageMedia{}, err
	}
	return imageFor(id, resource), nil
}

// ClearResources removes every asset stored under the video's ID.
func (s *LocalStorage) ClearResources(ctx context.Context, id video.ID) error {
	dir := filepath.Join(s.basePath, id.String())
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear resources: %w", err)
	}
	return nil
}

func (s *LocalStorage) write(id video.ID, resource video.Resource) error {
	target := filepath.Join(s.basePath, filepath.FromSlash(objectKey(id, resource)))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(target, resource.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
