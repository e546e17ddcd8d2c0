package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/internal/domain/model"
	"msgboard/internal/domain/repository/cache"
	"msgboard/internal/domain/repository/database"
	"msgboard/internal/domain/repository/minio"
	"msgboard/internal/infrastructure/metrics"
	"msgboard/pkg/logger"
	"msgboard/pkg/thumbnail"
)

// Thumbnailer serves message thumbnails, rendering each size at most once
// per message. Rendered thumbs are linked into the message with a
// compare-and-set; a writer that loses the race drops its own thumb and
// serves the winner's.
type Thumbnailer struct {
	messages    database.MessageRetriever
	thumbs      database.ThumbRetriever
	thumbWriter database.ThumbWriter
	linker      database.ThumbLinker
	remover     database.ThumbRemover
	images      minio.Getter
	cache       cache.ThumbCache
	metrics     *metrics.Metrics
}

func NewThumbnailer(messages database.MessageRetriever, thumbs database.ThumbRetriever,
	thumbWriter database.ThumbWriter, linker database.ThumbLinker, remover database.ThumbRemover,
	images minio.Getter, thumbCache cache.ThumbCache, m *metrics.Metrics,
) *Thumbnailer {
	return &Thumbnailer{
		messages:    messages,
		thumbs:      thumbs,
		thumbWriter: thumbWriter,
		linker:      linker,
		remover:     remover,
		images:      images,
		cache:       thumbCache,
		metrics:     m,
	}
}

func CacheKey(messageID string, size model.Size) string {
	return fmt.Sprintf("thumb:%s:%s", messageID, size.Key())
}

func (t *Thumbnailer) Thumbnail(ctx context.Context, messageID string, size model.Size, fit bool) ([]byte, error) {
	msg, err := t.messages.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if !msg.HasImage() {
		return nil, model.ErrNoImage
	}

	cacheKey := CacheKey(msg.ID.Hex(), size)
	data, ok, err := t.cache.Get(ctx, cacheKey)
	if err != nil {
		logger.Warn("thumbnail hot cache read failed", "key", cacheKey, "err", err)
	} else if ok {
		t.metrics.ThumbsServed.WithLabelValues(metrics.SourceHotCache).Inc()

		return data, nil
	}

	source := metrics.SourceStored
	if thumbID, linked := msg.Thumbs[size.Key()]; linked {
		data, err = t.load(ctx, thumbID)
	} else {
		source = metrics.SourceRendered
		data, err = t.render(ctx, msg, size, fit)
	}

	if err != nil {
		return nil, err
	}

	if err := t.cache.Set(ctx, cacheKey, data); err != nil {
		logger.Warn("thumbnail hot cache write failed", "key", cacheKey, "err", err)
	}

	t.metrics.ThumbsServed.WithLabelValues(source).Inc()

	return data, nil
}

func (t *Thumbnailer) load(ctx context.Context, thumbID primitive.ObjectID) ([]byte, error) {
	thumb, err := t.thumbs.GetByID(ctx, thumbID)
	if err != nil {
		return nil, err
	}

	return thumb.Image, nil
}

func (t *Thumbnailer) render(ctx context.Context, msg *model.Message, size model.Size, fit bool) ([]byte, error) {
	original, err := t.images.Get(ctx, msg.Image.Bucket, msg.Image.Object)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch original image: %w", err)
	}

	data, err := thumbnail.Render(original, size.Width, size.Height, fit)
	if err != nil {
		logger.Error("failed to render thumbnail", "id", msg.ID.Hex(), "size", size.Key(), "err", err)

		return nil, err
	}

	thumb := &model.Thumb{
		Image:   data,
		Size:    size.Key(),
		Message: msg.ID,
	}
	if err := t.thumbWriter.Write(ctx, thumb); err != nil {
		return nil, err
	}

	linked, err := t.linker.Link(ctx, msg.ID, size, thumb.ID)
	if err != nil {
		t.drop(ctx, thumb)

		return nil, err
	}

	if linked {
		return data, nil
	}

	t.metrics.ThumbRaces.Inc()
	t.drop(ctx, thumb)

	winner, err := t.messages.GetByID(ctx, msg.ID.Hex())
	if err != nil {
		return nil, err
	}

	thumbID, ok := winner.Thumbs[size.Key()]
	if !ok {
		return nil, fmt.Errorf("thumb %s of message %s vanished after a lost link", size.Key(), msg.ID.Hex())
	}

	return t.load(ctx, thumbID)
}

func (t *Thumbnailer) drop(ctx context.Context, thumb *model.Thumb) {
	if err := t.remover.RemoveByID(ctx, thumb.ID); err != nil {
		logger.Error("failed to remove unlinked thumb", "id", thumb.ID.Hex(), "err", err)
	}
}
