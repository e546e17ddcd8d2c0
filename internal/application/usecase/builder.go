package usecase

import (
	"html"
	"strconv"
	"time"

	"msgboard/internal/domain/dto"
	"msgboard/internal/domain/model"
	"msgboard/pkg/annotation"
	"msgboard/pkg/avatar"
	"msgboard/pkg/geolocation"
)

// Builder turns raw submissions into messages.
type Builder struct {
	extractor *geolocation.Extractor
	now       func() time.Time
}

func NewBuilder(extractor *geolocation.Extractor) *Builder {
	if extractor == nil {
		extractor = geolocation.Unsupported()
	}

	return &Builder{
		extractor: extractor,
		now:       time.Now,
	}
}

// FromSubmission builds a message without checking required fields; those
// are enforced when the message is written. The image itself is not
// attached here, only its geolocation.
func (b *Builder) FromSubmission(sub dto.Submission) (*model.Message, error) {
	msg := &model.Message{
		SenderName:    optional(sub.Name),
		SenderEmail:   optional(sub.Email),
		SenderWebsite: optional(sub.URL),
		Date:          b.now(),
	}

	if sub.Avatar != "" {
		msg.SenderAvatar = optional(sub.Avatar)
	} else {
		msg.SenderAvatar = optional(avatar.BuildURL(sub.Email))
	}

	if sub.Latitude != "" && sub.Longitude != "" {
		point, err := parseGeoPoint(sub.Longitude, sub.Latitude)
		if err != nil {
			return nil, err
		}

		msg.SenderGeolocation = point
	}

	if sub.Message != "" {
		msg.Content = optional(html.EscapeString(sub.Message))
	}

	// annotations come from the raw text, before escaping
	msg.Tags = annotation.FindTags(sub.Message)
	msg.Packages = annotation.FindPackages(sub.Message)

	if len(sub.Image) > 0 {
		if lng, lat, ok := b.extractor.Extract(sub.Image); ok {
			msg.ImageGeolocation = model.NewGeoPoint(lng, lat)
		}
	}

	return msg, nil
}

func parseGeoPoint(longitude, latitude string) (*model.GeoPoint, error) {
	var fields []string

	lng, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		fields = append(fields, "longitude")
	}

	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		fields = append(fields, "latitude")
	}

	if len(fields) > 0 {
		return nil, &model.ValidationError{Fields: fields, Reason: "not a number"}
	}

	return model.NewGeoPoint(lng, lat), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
