package usecase

import (
	"context"
	"errors"

	"msgboard/internal/domain/dto"
	"msgboard/internal/domain/model"
	"msgboard/internal/domain/repository/broker"
	"msgboard/internal/domain/repository/database"
	"msgboard/internal/domain/repository/minio"
	"msgboard/internal/infrastructure/metrics"
	"msgboard/pkg/logger"
)

type Submitter struct {
	builder       *Builder
	presenter     *Presenter
	writer        database.MessageWriter
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	publisher     broker.Publisher
	metrics       *metrics.Metrics
}

func NewSubmitter(builder *Builder, presenter *Presenter, writer database.MessageWriter,
	minioUploader minio.Uploader, minioRemover minio.Remover, publisher broker.Publisher, m *metrics.Metrics,
) *Submitter {
	return &Submitter{
		builder:       builder,
		presenter:     presenter,
		writer:        writer,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		publisher:     publisher,
		metrics:       m,
	}
}

// Submit builds, stores and announces a message. The image, when present, is
// uploaded first and removed again if the message cannot be written.
func (s *Submitter) Submit(ctx context.Context, submission dto.Submission) (*dto.MessageDescriptor, error) {
	msg, err := s.builder.FromSubmission(submission)
	if err != nil {
		s.metrics.MessagesRejected.Inc()

		return nil, err
	}

	if len(submission.Image) > 0 {
		stored, err := s.minioUploader.Upload(ctx, submission.Image)
		if err != nil {
			return nil, err
		}

		msg.Image = &model.ImageRef{
			Bucket:      stored.Bucket,
			Object:      stored.Object,
			ContentType: stored.ContentType,
			Size:        stored.Size,
		}
	}

	if err := s.writer.Write(ctx, msg); err != nil {
		if msg.Image != nil {
			if fileErr := s.minioRemover.Remove(ctx, msg.Image.Bucket, msg.Image.Object); fileErr != nil {
				logger.Error("failed to remove image from minio after write failed", "err", fileErr)
			}
		}

		var verr *model.ValidationError
		if errors.As(err, &verr) {
			s.metrics.MessagesRejected.Inc()
		}

		return nil, err
	}

	s.metrics.MessagesStored.Inc()

	if msg.HasImage() {
		if err := s.publisher.Publish(ctx, msg.ID.Hex()); err != nil {
			logger.Error("failed to publish message for thumbnail prewarm", "id", msg.ID.Hex(), "err", err)
		}
	}

	descriptor := s.presenter.ToTransportForm(msg)

	return &descriptor, nil
}
