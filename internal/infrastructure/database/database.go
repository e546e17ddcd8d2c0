package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"msgboard/pkg/logger"
)

const (
	MessageCollection = "messages"
	ThumbCollection   = "thumbs"

	documentValidationFailure = 121
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to mongodb", "db", cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
			NilMapAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initMessageCollection(db); err != nil {
		return nil, err
	}

	if err := initThumbCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(name)
}

func geoPointSchema() bson.M {
	return bson.M{
		"bsonType": "array",
		"minItems": 2,
		"maxItems": 2,
		"items": bson.A{
			bson.M{"bsonType": "double", "minimum": -180, "maximum": 180},
			bson.M{"bsonType": "double", "minimum": -90, "maximum": 90},
		},
	}
}

func initMessageCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, MessageCollection)
	if err != nil || exists {
		return err
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "sender_name", "content", "date", "tags", "packages", "thumbs"},
			"properties": bson.M{
				"_id":                bson.M{"bsonType": "objectId"},
				"sender_name":        bson.M{"bsonType": "string", "minLength": 1},
				"sender_email":       bson.M{"bsonType": "string"},
				"sender_website":     bson.M{"bsonType": "string"},
				"sender_avatar":      bson.M{"bsonType": "string"},
				"sender_geolocation": geoPointSchema(),
				"content":            bson.M{"bsonType": "string", "minLength": 10},
				"packages": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
				"tags": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string", "maxLength": 30},
				},
				"date": bson.M{"bsonType": "date"},
				"image": bson.M{
					"bsonType": "object",
					"required": []string{"bucket", "object"},
					"properties": bson.M{
						"bucket":       bson.M{"bsonType": "string"},
						"object":       bson.M{"bsonType": "string"},
						"content_type": bson.M{"bsonType": "string"},
						"size":         bson.M{"bsonType": "long"},
					},
				},
				"thumbs": bson.M{
					"bsonType":             "object",
					"additionalProperties": bson.M{"bsonType": "objectId"},
				},
				"image_geolocation": geoPointSchema(),
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, MessageCollection, collOpts); err != nil {
		return err
	}

	_, err = db.collection(MessageCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	})

	return err
}

func initThumbCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, ThumbCollection)
	if err != nil || exists {
		return err
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "image", "size", "message"},
			"properties": bson.M{
				"_id":     bson.M{"bsonType": "objectId"},
				"image":   bson.M{"bsonType": "binData"},
				"size":    bson.M{"bsonType": "string", "pattern": "^[0-9]+x[0-9]+$"},
				"message": bson.M{"bsonType": "objectId"},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, ThumbCollection, collOpts); err != nil {
		return err
	}

	_, err = db.collection(ThumbCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "message", Value: 1}},
	})

	return err
}

func collectionExists(ctx context.Context, db *Database, name string) (bool, error) {
	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}

	return len(collections) > 0, nil
}

// isValidationFailure reports whether the server rejected a write because of
// the collection's $jsonSchema.
func isValidationFailure(err error) bool {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return false
	}

	for _, e := range we.WriteErrors {
		if e.Code == documentValidationFailure {
			return true
		}
	}

	return false
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
