package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/kinotek/catalog/internal/domain/video"
	"github.com/kinotek/catalog/pkg/logger"
)

// S3Storage stores media resources in an S3 bucket.
type S3Storage struct {
	client *s3.Client
	bucket string
	log    logger.Logger
}

// NewS3Storage creates an S3 media resource gateway.
func NewS3Storage(ctx context.Context, bucket, region string, log logger.Logger) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Storage{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		log:    log,
	}, nil
}

// StoreAudioVideo uploads an audio-video asset and returns its descriptor.
func (s *S3Storage) StoreAudioVideo(ctx context.Context, id video.ID, resource video.Resource) (video.AudioVideoMedia, error) {
	if err := s.put(ctx, id, resource); err != nil {
		return video.AudioVideoMedia{}, err
	}
	return audioVideoFor(id, resource), nil
}

// StoreImage uploads an image asset and returns its descriptor.
func (s *S3Storage) StoreImage(ctx context.Context, id video.ID, resource video.Resource) (video.ImageMedia, error) {
	if err := s.put(ctx, id, resource); err != nil {
		return video.ImageMedia{}, err
	}
	return imageFor(id, resource), nil
}

// ClearResources removes every object stored under the video's ID prefix.
func (s *S3Storage) ClearResources(ctx context.Context, id video.ID) error {
	prefix := clearPrefix(id)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list resources: %w", err)
		}
		if len(page.Contents) == 0 {
			continue
		}

		objects := make([]types.ObjectIdentifier, len(page.Contents))
		for i, object := range page.Contents {
			objects[i] = types.ObjectIdentifier{Key: object.Key}
		}
		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objects},
		})
		if err != nil {
			return fmt.Errorf("failed to delete resources: %w", err)
		}
	}
	return nil
}

func (s *S3Storage) put(ctx context.Context, id video.ID, resource video.Resource) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey(id, resource)),
		Body:        bytes.NewReader(resource.Content),
		ContentType: aws.String(resource.ContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to store resource: %w", err)
	}
	return nil
}
