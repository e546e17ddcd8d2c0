package database

import (
	"context"

	"msgboard/internal/domain/model"
)

type MessageWriter interface {
	Write(ctx context.Context, msg *model.Message) error
}

type ThumbWriter interface {
	Write(ctx context.Context, thumb *model.Thumb) error
}
