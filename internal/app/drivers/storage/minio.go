package storage

import (
	"context"
	"fmt"
	"pilates-vision-service/internal/app/config"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio returns a client whose posture image bucket is guaranteed to exist.
func NewMinio(cfg config.Minio, bucketName string, logger *zap.Logger) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client for %s: %w", cfg.Endpoint(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ensureBucket(ctx, client, bucketName); err != nil {
		return nil, err
	}

	logger.Info("Connected to minio", zap.String("endpoint", cfg.Endpoint()), zap.String("bucket_name", bucketName))
	return client, nil
}

func ensureBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucketName, err)
	}
	if exists {
		return nil
	}
	err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		// another replica may have created it in between
		if exists, _ := client.BucketExists(ctx, bucketName); exists {
			return nil
		}
		return fmt.Errorf("create bucket %s: %w", bucketName, err)
	}
	return nil
}
