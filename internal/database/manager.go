package database

import (
	"context"
	"fmt"

	"github.com/cartorio-digital/apostille-platform-server/internal/config"
	"github.com/cartorio-digital/apostille-platform-server/package/minio"
	"github.com/cartorio-digital/apostille-platform-server/package/mongo"
)

// Manager owns the long-lived backing connections: the document-record
// store (MongoDB) and the object store (MinIO).
type Manager struct {
	Mongo *mongo.MongoService
	MinIO *minio.MinIOClient
}

func NewManager(cfg *config.Config) (*Manager, error) {
	mongoService, err := mongo.NewMongoService(mongo.MongoConfig{
		Address:  cfg.MongoDB.Address,
		Username: cfg.MongoDB.Username,
		Password: cfg.MongoDB.Password,
		Database: cfg.MongoDB.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB: %w", err)
	}

	minioClient, err := minio.NewMinIOService(minio.MinIOConfig{
		Endpoint:        cfg.MinIO.Endpoint,
		AccessKeyID:     cfg.MinIO.AccessKey,
		SecretAccessKey: cfg.MinIO.SecretKey,
		BucketName:      cfg.MinIO.BucketName,
		UseSSL:          cfg.MinIO.UseSSL,
	})
	if err != nil {
		mongoService.Close(context.Background())
		return nil, fmt.Errorf("failed to initialize MinIO: %w", err)
	}

	return &Manager{
		Mongo: mongoService,
		MinIO: minioClient,
	}, nil
}

func (m *Manager) Close(ctx context.Context) error {
	var firstErr error

	if m.MinIO != nil {
		if err := m.MinIO.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if m.Mongo != nil {
		if err := m.Mongo.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// HealthCheck probes both backing stores.
func (m *Manager) HealthCheck(ctx context.Context) map[string]any {
	return map[string]any{
		"mongodb": m.Mongo.HealthCheck(ctx),
		"minio":   m.MinIO.HealthCheck(ctx),
	}
}
