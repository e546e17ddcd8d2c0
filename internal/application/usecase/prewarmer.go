package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"msgboard/internal/application/usecase/abstraction"
	"msgboard/internal/domain/model"
	"msgboard/internal/domain/repository/broker"
	"msgboard/internal/infrastructure/metrics"
	"msgboard/pkg/logger"
)

type PrewarmConfig struct {
	Workers      int      `yaml:"workers"`
	ConsumerName string   `yaml:"consumer_name"`
	FitSizes     []string `yaml:"fit_sizes"`
	NonFitSizes  []string `yaml:"non_fit_sizes"`
}

type prewarmJob struct {
	size model.Size
	fit  bool
}

// Prewarmer consumes message-created events and renders the configured
// thumbnail sizes ahead of the first page view.
type Prewarmer struct {
	receiver    broker.Receiver
	thumbnailer abstraction.Thumbnailer
	metrics     *metrics.Metrics
	jobs        []prewarmJob
	workers     int
	consumer    string
}

func NewPrewarmer(receiver broker.Receiver, thumbnailer abstraction.Thumbnailer, cfg PrewarmConfig,
	m *metrics.Metrics,
) (*Prewarmer, error) {
	p := &Prewarmer{
		receiver:    receiver,
		thumbnailer: thumbnailer,
		metrics:     m,
		workers:     cfg.Workers,
		consumer:    cfg.ConsumerName,
	}

	if p.workers <= 0 {
		p.workers = 1
	}

	if p.consumer == "" {
		p.consumer = "prewarm"
	}

	for _, sizes := range []struct {
		keys []string
		fit  bool
	}{{cfg.FitSizes, true}, {cfg.NonFitSizes, false}} {
		for _, key := range sizes.keys {
			size, err := model.ParseSize(key)
			if err != nil {
				return nil, fmt.Errorf("prewarm: %w", err)
			}

			p.jobs = append(p.jobs, prewarmJob{size: size, fit: sizes.fit})
		}
	}

	return p, nil
}

// Run starts the workers and blocks until ctx is done and every worker has
// returned.
func (p *Prewarmer) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	errCh := make(chan error, p.workers)

	for i := 0; i < p.workers; i++ {
		messages, err := p.receiver.Messages(ctx, fmt.Sprintf("%s-%d", p.consumer, i))
		if err != nil {
			errCh <- err

			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			for msg := range messages {
				p.handle(ctx, msg)
			}
		}()
	}

	wg.Wait()
	close(errCh)

	return <-errCh
}

func (p *Prewarmer) handle(ctx context.Context, msg broker.Message) {
	id := msg.Body()
	result := "ok"

	for _, job := range p.jobs {
		_, err := p.thumbnailer.Thumbnail(ctx, id, job.size, job.fit)
		if err == nil {
			continue
		}

		if errors.Is(err, model.ErrMessageNotFound) || errors.Is(err, model.ErrNoImage) {
			logger.Warn("skipping prewarm of message without image", "id", id, "err", err)
			result = "skipped"

			break
		}

		logger.Error("failed to prewarm thumbnail", "id", id, "size", job.size.Key(), "err", err)
		result = "failed"
	}

	p.metrics.PrewarmRuns.WithLabelValues(result).Inc()

	if err := msg.Ack(); err != nil {
		logger.Error("failed to ack prewarm message", "id", msg.ID(), "err", err)
	}
}
