package minio

import "context"

type Getter interface {
	Get(ctx context.Context, bucketName, objectName string) ([]byte, error)
}
