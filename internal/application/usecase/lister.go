package usecase

import (
	"context"

	"msgboard/internal/domain/dto"
	"msgboard/internal/domain/model"
	"msgboard/internal/domain/repository/database"
)

// Lister implements the Lister abstraction over the message queries.
type Lister struct {
	lister    database.MessageLister
	presenter *Presenter
}

func NewLister(lister database.MessageLister, presenter *Presenter) *Lister {
	return &Lister{
		lister:    lister,
		presenter: presenter,
	}
}

// Latest returns the newest messages first. A limit of 0 returns them all.
func (l *Lister) Latest(ctx context.Context, limit int64) ([]dto.MessageDescriptor, error) {
	return l.present(l.lister.Latest(ctx, limit))
}

func (l *Lister) Slideshow(ctx context.Context) ([]dto.MessageDescriptor, error) {
	return l.present(l.lister.WithImage(ctx, 0))
}

func (l *Lister) Geolocations(ctx context.Context) ([]dto.MessageDescriptor, error) {
	return l.present(l.lister.WithGeolocation(ctx, 0))
}

func (l *Lister) present(messages []model.Message, err error) ([]dto.MessageDescriptor, error) {
	if err != nil {
		return nil, err
	}

	descriptors := make([]dto.MessageDescriptor, 0, len(messages))
	for i := range messages {
		descriptors = append(descriptors, l.presenter.ToTransportForm(&messages[i]))
	}

	return descriptors, nil
}
