package abstraction

import (
	"context"

	"msgboard/internal/domain/dto"
)

// Getter defines the interface for retrieving a single message.
type Getter interface {
	GetMessage(ctx context.Context, id string) (*dto.MessageDescriptor, error)
}
