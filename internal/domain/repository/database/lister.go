package database

import (
	"context"

	"msgboard/internal/domain/model"
)

// MessageLister defines the queries used to list messages, newest first.
type MessageLister interface {
	Latest(ctx context.Context, limit int64) ([]model.Message, error)
	WithImage(ctx context.Context, limit int64) ([]model.Message, error)
	WithGeolocation(ctx context.Context, limit int64) ([]model.Message, error)
}
