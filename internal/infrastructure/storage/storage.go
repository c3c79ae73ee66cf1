package storage

import (
	"context"
	"time"

	"github.com/clinicfinder/backend/internal/application/export"
	"github.com/clinicfinder/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New returns S3 storage when a bucket is configured, otherwise in-memory storage
func New(cfg *config.StorageConfig, logger *zap.Logger) (export.ObjectStorage, error) {
	if cfg == nil || cfg.Bucket == "" {
		logger.Info("no export bucket configured, keeping exports in memory")
		return NewMemoryStorage(), nil
	}
	s, err := NewS3Storage(cfg, WithLogger(logger.Named("s3")))
	if err != nil {
		return nil, err
	}
	if cfg.CreateBucket {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}
