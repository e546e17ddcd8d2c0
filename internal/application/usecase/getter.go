package usecase

import (
	"context"

	"msgboard/internal/domain/dto"
	"msgboard/internal/domain/repository/database"
)

// Getter implements the Getter abstraction for retrieving a message.
type Getter struct {
	retriever database.MessageRetriever
	presenter *Presenter
}

func NewGetter(retriever database.MessageRetriever, presenter *Presenter) *Getter {
	return &Getter{
		retriever: retriever,
		presenter: presenter,
	}
}

func (g *Getter) GetMessage(ctx context.Context, id string) (*dto.MessageDescriptor, error) {
	msg, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	descriptor := g.presenter.ToTransportForm(msg)

	return &descriptor, nil
}
