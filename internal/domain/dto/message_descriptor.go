package dto

import "html/template"

// MessageDescriptor is the transport form of a message.
type MessageDescriptor struct {
	ID   string `json:"id"`
	Date string `json:"date"`

	SenderName        *string     `json:"sender_name,omitempty"`
	SenderWebsite     *string     `json:"sender_website,omitempty"`
	SenderAvatar      *string     `json:"sender_avatar,omitempty"`
	SenderGeolocation *[2]float64 `json:"sender_geolocation,omitempty"`
	Content           *string     `json:"content,omitempty"`
	Tags              []string    `json:"tags"`
	Packages          []string    `json:"packages"`
	ImageGeolocation  *[2]float64 `json:"image_geolocation,omitempty"`

	Geolocation     *[2]float64 `json:"geolocation"`
	ImageLongitude  *float64    `json:"image_longitude"`
	ImageLatitude   *float64    `json:"image_latitude"`
	SenderLongitude *float64    `json:"sender_longitude"`
	SenderLatitude  *float64    `json:"sender_latitude"`

	ImageURL  string `json:"image_url"`
	ThumbURL  string `json:"thumb_url"`
	Thumb2URL string `json:"thumb2_url"`

	HasImage          bool          `json:"has_image"`
	FormattedUsername string        `json:"formatted_username"`
	FormattedContent  template.HTML `json:"formatted_content"`
	FormattedWebsite  *string       `json:"formatted_website"`
}
