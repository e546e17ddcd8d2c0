package abstraction

import (
	"context"

	"msgboard/internal/domain/dto"
)

// Submitter stores a new message built from raw submitted data.
type Submitter interface {
	Submit(ctx context.Context, submission dto.Submission) (*dto.MessageDescriptor, error)
}
