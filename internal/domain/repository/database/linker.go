package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/internal/domain/model"
)

// ThumbLinker records a thumb in a message's thumbs mapping. Link reports
// false when another thumb already holds that size.
type ThumbLinker interface {
	Link(ctx context.Context, messageID primitive.ObjectID, size model.Size, thumbID primitive.ObjectID) (bool, error)
}
