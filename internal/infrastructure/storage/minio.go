package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kinotek/catalog/internal/domain/video"
	"github.com/kinotek/catalog/pkg/logger"
)

// MinioStorage stores media resources in a MinIO bucket.
type MinioStorage struct {
	client *minio.Client
	bucket string
	log    logger.Logger
}

// NewMinioStorage connects to a MinIO endpoint and ensures the bucket exists.
func NewMinioStorage(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, log logger.Logger) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info("created bucket", logger.String("bucket", bucket))
	}

	return &MinioStorage{client: client, bucket: bucket, log: log}, nil
}

// StoreAudioVideo uploads an audio-video asset and returns its descriptor.
func (s *MinioStorage) StoreAudioVideo(ctx context.Context, id video.ID, resource video.Resource) (video.AudioVideoMedia, error) {
	if err := s.put(ctx, id, resource); err != nil {
		return video.AudioVideoMedia{}, err
	}
	return audioVideoFor(id, resource), nil
}

// StoreImage uploads an image asset and returns its descriptor.
func (s *MinioStorage) StoreImage(ctx context.Context, id video.ID, resource video.Resource) (video.ImageMedia, error) {
	if err := s.put(ctx, id, resource); err != nil {
		return video.ImageMedia{}, err
	}
	return imageFor(id, resource), nil
}

// ClearResources removes every object stored under the video's ID prefix.
func (s *MinioStorage) ClearResources(ctx context.Context, id video.ID) error {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    clearPrefix(id),
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return fmt.Errorf("failed to list resources: %w", object.Err)
		}
		if err := s.client.RemoveObject(ctx, s.bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to delete resource %s: %w", object.Key, err)
		}
	}
	return nil
}

func (s *MinioStorage) put(ctx context.Context, id video.ID, resource video.Resource) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey(id, resource),
		bytes.NewReader(resource.Content), int64(len(resource.Content)),
		minio.PutObjectOptions{ContentType: resource.ContentType})
	if err != nil {
		return fmt.Errorf("failed to store resource: %w", err)
	}
	return nil
}
