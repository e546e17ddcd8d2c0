package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/internal/domain/model"
	"msgboard/pkg/logger"
)

type ThumbLinker struct {
	db *Database
}

func NewThumbLinker(db *Database) *ThumbLinker {
	return &ThumbLinker{db: db}
}

// Link sets message.thumbs[size] to thumbID only if no thumb is linked under
// that size yet. It returns false when another writer got there first.
func (l *ThumbLinker) Link(ctx context.Context, messageID primitive.ObjectID, size model.Size,
	thumbID primitive.ObjectID,
) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	field := "thumbs." + size.Key()

	res, err := l.db.collection(MessageCollection).UpdateOne(ctx,
		bson.M{"_id": messageID, field: bson.M{"$exists": false}},
		bson.M{"$set": bson.M{field: thumbID}},
	)
	if err != nil {
		logger.Error("failed to link thumb", "message", messageID.Hex(), "size", size.Key(), "err", err)

		return false, err
	}

	return res.MatchedCount == 1, nil
}
