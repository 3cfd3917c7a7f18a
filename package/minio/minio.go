package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
}

type HealthStatus struct {
	Connected    bool          `json:"connected"`
	Endpoint     string        `json:"endpoint"`
	BucketExists bool          `json:"bucket_exists"`
	BucketName   string        `json:"bucket_name"`
	Latency      time.Duration `json:"latency"`
	Error        string        `json:"error,omitempty"`
}

// ObjectStorage is the blob-store surface the application consumes: durable
// uploads keyed by a path-like name, returning a retrievable URL.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	Get(ctx context.Context, objectName string) (io.ReadCloser, error)
	PresignedURL(ctx context.Context, objectName string, expires time.Duration) (*url.URL, error)
	HealthCheck(ctx context.Context) HealthStatus
	Close() error
}

type MinIOClient struct {
	client     *minio.Client
	config     MinIOConfig
	bucketName string
	mu         sync.RWMutex
}

func NewMinIOService(config MinIOConfig) (*MinIOClient, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("MinIO endpoint is required")
	}
	if config.BucketName == "" {
		return nil, fmt.Errorf("MinIO bucket name is required")
	}
	if config.AccessKeyID == "" || config.SecretAccessKey == "" {
		return nil, fmt.Errorf("MinIO credentials are required")
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKeyID, config.SecretAccessKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	minioClient := &MinIOClient{
		client:     client,
		config:     config,
		bucketName: config.BucketName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, config.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", config.BucketName, err)
		}
	}

	return minioClient, nil
}

// Upload stores the object and returns its public URL. Uploading twice
// under the same name overwrites; callers derive names deterministically.
func (m *MinIOClient) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.client.PutObject(ctx, m.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectName, err)
	}

	return m.objectURL(objectName), nil
}

func (m *MinIOClient) Delete(ctx context.Context, objectName string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	err := m.client.RemoveObject(ctx, m.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectName, err)
	}

	return nil
}

func (m *MinIOClient) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, err := m.client.GetObject(ctx, m.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}

	return obj, nil
}

func (m *MinIOClient) PresignedURL(ctx context.Context, objectName string, expires time.Duration) (*url.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	presignedURL, err := m.client.PresignedGetObject(ctx, m.bucketName, objectName, expires, make(url.Values))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL for %s: %w", objectName, err)
	}

	return presignedURL, nil
}

func (m *MinIOClient) HealthCheck(ctx context.Context) HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := time.Now()
	status := HealthStatus{
		Endpoint:   m.config.Endpoint,
		BucketName: m.bucketName,
	}

	exists, err := m.client.BucketExists(ctx, m.bucketName)
	if err != nil {
		status.Error = fmt.Sprintf("failed to check bucket existence: %v", err)
		status.Latency = time.Since(start)
		return status
	}

	status.Connected = true
	status.BucketExists = exists
	status.Latency = time.Since(start)

	if !exists {
		status.Error = fmt.Sprintf("bucket %s does not exist", m.bucketName)
	}

	return status
}

func (m *MinIOClient) Close() error {
	return nil
}

func (m *MinIOClient) objectURL(objectName string) string {
	scheme := "http"
	if m.config.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.config.Endpoint, m.bucketName, objectName)
}
