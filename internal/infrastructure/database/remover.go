package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/pkg/logger"
)

type ThumbRemover struct {
	db *Database
}

func NewThumbRemover(db *Database) *ThumbRemover {
	return &ThumbRemover{db: db}
}

func (r *ThumbRemover) RemoveByID(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	_, err := r.db.collection(ThumbCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error("failed to remove thumb", "id", id.Hex(), "err", err)

		return err
	}

	return nil
}
