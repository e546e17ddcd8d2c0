package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"msgboard/internal/domain/model"
	"msgboard/pkg/logger"
)

type MessageLister struct {
	db *Database
}

func NewMessageLister(db *Database) *MessageLister {
	return &MessageLister{db: db}
}

// Latest lists every message, newest first. A limit of 0 means no limit.
func (l *MessageLister) Latest(ctx context.Context, limit int64) ([]model.Message, error) {
	return l.find(ctx, bson.M{}, limit)
}

// WithImage lists the messages that carry an image, newest first.
func (l *MessageLister) WithImage(ctx context.Context, limit int64) ([]model.Message, error) {
	return l.find(ctx, bson.M{"image": bson.M{"$exists": true}}, limit)
}

// WithGeolocation lists the messages located either by their sender or by
// their image metadata.
func (l *MessageLister) WithGeolocation(ctx context.Context, limit int64) ([]model.Message, error) {
	return l.find(ctx, bson.M{"$or": bson.A{
		bson.M{"sender_geolocation": bson.M{"$exists": true}},
		bson.M{"image_geolocation": bson.M{"$exists": true}},
	}}, limit)
}

func (l *MessageLister) find(ctx context.Context, filter bson.M, limit int64) ([]model.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := l.db.collection(MessageCollection).Find(ctx, filter, opts)
	if err != nil {
		logger.Error("failed to list messages", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []model.Message
	if err = cursor.All(ctx, &messages); err != nil {
		logger.Error("failed to decode messages", "err", err)

		return nil, err
	}

	return messages, nil
}
