// Package storage stores book cover images in S3-compatible object storage.
package storage

import (
	"context"
	"io"
	"time"
)

// ServiceConfig holds the connection settings for the storage backend.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// StorageService is the public interface for cover image storage.
type StorageService interface {
	// Upload stores an object under key.
	Upload(ctx context.Context, key, contentType string, body io.Reader) error

	// PresignDownload generates a pre-signed URL for fetching an object.
	PresignDownload(ctx context.Context, key string, duration time.Duration) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}

// NewStorageService is the factory for StorageService.
// Only S3-compatible backends are supported.
func NewStorageService(cfg ServiceConfig) (StorageService, error) {
	return newS3Client(cfg)
}
