package minio

import (
	"context"

	"msgboard/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, image []byte) (entity.StoredObject, error)
}
