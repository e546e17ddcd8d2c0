package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a board post together with everything derived from it: the
// annotations found in its text, the attached image and the thumbnails
// rendered from that image. Optional fields are nil when absent; an empty
// submitted value is never stored.
type Message struct {
	ID primitive.ObjectID `bson:"_id"`

	SenderName        *string   `bson:"sender_name,omitempty"        validate:"required,min=1"`
	SenderEmail       *string   `bson:"sender_email,omitempty"       validate:"omitempty,email"`
	SenderWebsite     *string   `bson:"sender_website,omitempty"`
	SenderAvatar      *string   `bson:"sender_avatar,omitempty"`
	SenderGeolocation *GeoPoint `bson:"sender_geolocation,omitempty"`

	Content  *string  `bson:"content,omitempty" validate:"required,min=10"`
	Packages []string `bson:"packages"`
	Tags     []string `bson:"tags"              validate:"dive,max=30"`

	Date time.Time `bson:"date"`

	Image            *ImageRef                     `bson:"image,omitempty"`
	Thumbs           map[string]primitive.ObjectID `bson:"thumbs"`
	ImageGeolocation *GeoPoint                     `bson:"image_geolocation,omitempty"`
}

// ImageRef points at the original upload in object storage.
type ImageRef struct {
	Bucket      string `bson:"bucket"`
	Object      string `bson:"object"`
	ContentType string `bson:"content_type"`
	Size        int64  `bson:"size"`
}

// Thumb is one rendering of a message image at a single size. It is written
// once and only linked from Message.Thumbs afterwards.
type Thumb struct {
	ID      primitive.ObjectID `bson:"_id"`
	Image   []byte             `bson:"image"`
	Size    string             `bson:"size"`
	Message primitive.ObjectID `bson:"message"`
}
