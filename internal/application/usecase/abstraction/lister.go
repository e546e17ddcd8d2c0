package abstraction

import (
	"context"

	"msgboard/internal/domain/dto"
)

type Lister interface {
	Latest(ctx context.Context, limit int64) ([]dto.MessageDescriptor, error)
	Slideshow(ctx context.Context) ([]dto.MessageDescriptor, error)
	Geolocations(ctx context.Context) ([]dto.MessageDescriptor, error)
}
