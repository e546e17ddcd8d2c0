package database

import (
	"context"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/internal/domain/model"
	"msgboard/pkg/logger"
)

type MessageWriter struct {
	db       *Database
	validate *validator.Validate
}

func NewMessageWriter(db *Database) *MessageWriter {
	return &MessageWriter{
		db:       db,
		validate: newValidator(),
	}
}

// Write validates and inserts a new message, assigning its id when unset.
func (w *MessageWriter) Write(ctx context.Context, msg *model.Message) error {
	if err := validateMessage(w.validate, msg); err != nil {
		return err
	}

	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}

	if msg.Thumbs == nil {
		msg.Thumbs = map[string]primitive.ObjectID{}
	}

	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	_, err := w.db.collection(MessageCollection).InsertOne(ctx, msg)
	if err != nil {
		if isValidationFailure(err) {
			return &model.ValidationError{Reason: "document failed validation"}
		}

		logger.Error("failed to insert message", "err", err)

		return err
	}

	return nil
}

type ThumbWriter struct {
	db *Database
}

func NewThumbWriter(db *Database) *ThumbWriter {
	return &ThumbWriter{db: db}
}

func (w *ThumbWriter) Write(ctx context.Context, thumb *model.Thumb) error {
	if thumb.ID.IsZero() {
		thumb.ID = primitive.NewObjectID()
	}

	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	_, err := w.db.collection(ThumbCollection).InsertOne(ctx, thumb)
	if err != nil {
		logger.Error("failed to insert thumb", "message", thumb.Message.Hex(), "size", thumb.Size, "err", err)

		return err
	}

	return nil
}
