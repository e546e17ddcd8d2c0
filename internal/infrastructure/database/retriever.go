package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"msgboard/internal/domain/model"
	"msgboard/pkg/logger"
)

type MessageRetriever struct {
	db *Database
}

func NewMessageRetriever(db *Database) *MessageRetriever {
	return &MessageRetriever{db: db}
}

func (r *MessageRetriever) GetByID(ctx context.Context, id string) (*model.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var msg model.Message
	err = r.db.collection(MessageCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&msg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrMessageNotFound
		}

		logger.Error("failed to retrieve message by id", "id", id, "err", err)

		return nil, err
	}

	return &msg, nil
}

type ThumbRetriever struct {
	db *Database
}

func NewThumbRetriever(db *Database) *ThumbRetriever {
	return &ThumbRetriever{db: db}
}

func (r *ThumbRetriever) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Thumb, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var thumb model.Thumb
	err := r.db.collection(ThumbCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&thumb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrThumbNotFound
		}

		logger.Error("failed to retrieve thumb by id", "id", id.Hex(), "err", err)

		return nil, err
	}

	return &thumb, nil
}
