package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/internal/domain/model"
)

type MessageRetriever interface {
	GetByID(ctx context.Context, id string) (*model.Message, error)
}

type ThumbRetriever interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Thumb, error)
}
