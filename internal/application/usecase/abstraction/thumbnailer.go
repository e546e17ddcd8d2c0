package abstraction

import (
	"context"

	"msgboard/internal/domain/model"
)

// Thumbnailer returns the JPEG bytes of a message image at the given size.
type Thumbnailer interface {
	Thumbnail(ctx context.Context, messageID string, size model.Size, fit bool) ([]byte, error)
}
