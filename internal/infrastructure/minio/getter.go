package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"msgboard/pkg/logger"
)

type Getter struct {
	minioClient *minio.Client
	cfg         *GetterConfig
}

func NewGetter(minioClient *minio.Client, cfg *GetterConfig) *Getter {
	return &Getter{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Get reads a whole object into memory.
func (g *Getter) Get(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.Timeout)*time.Millisecond)
	defer cancel()

	object, err := g.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		logger.Error("failed to get object", "bucket", bucketName, "object", objectName, "err", err)

		return nil, err
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		logger.Error("failed to read object", "bucket", bucketName, "object", objectName, "err", err)

		return nil, fmt.Errorf("read error: %w", err)
	}

	return data, nil
}
