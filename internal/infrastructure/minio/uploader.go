package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"msgboard/internal/domain/entity"
	"msgboard/internal/domain/model"
	"msgboard/pkg/logger"
	"msgboard/pkg/utils"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, config *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         config,
	}
}

// Upload stores an image under a fresh object name. Anything that does not
// sniff as a decodable image is rejected with model.ErrNotAnImage.
func (u *Uploader) Upload(ctx context.Context, image []byte) (entity.StoredObject, error) {
	if len(image) == 0 {
		return entity.StoredObject{}, errors.New("read error: empty file")
	}

	detectedMIME := mimetype.Detect(image).String()
	ext, ok := utils.GetImageExtension(detectedMIME)
	if !ok {
		return entity.StoredObject{}, fmt.Errorf("%w: detected %s", model.ErrNotAnImage, detectedMIME)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	objectName := uuid.New().String() + ext
	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, objectName, bytes.NewReader(image), int64(len(image)),
		minio.PutObjectOptions{
			ContentType: detectedMIME,
		})
	if err != nil {
		logger.Error("failed to upload image", "object", objectName, "err", err)

		return entity.StoredObject{}, fmt.Errorf("upload failed: %w", err)
	}

	return entity.StoredObject{
		Bucket:      u.cfg.Bucket,
		Object:      objectName,
		ContentType: detectedMIME,
		Size:        info.Size,
	}, nil
}
