package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"msgboard/internal/domain/dto"
	"msgboard/internal/domain/model"
)

type mockSubmitter struct{ mock.Mock }

func (m *mockSubmitter) Submit(ctx context.Context, submission dto.Submission) (*dto.MessageDescriptor, error) {
	args := m.Called(ctx, submission)
	d, _ := args.Get(0).(*dto.MessageDescriptor)

	return d, args.Error(1)
}

type mockGetter struct{ mock.Mock }

func (m *mockGetter) GetMessage(ctx context.Context, id string) (*dto.MessageDescriptor, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dto.MessageDescriptor)

	return d, args.Error(1)
}

type mockLister struct{ mock.Mock }

func (m *mockLister) Latest(ctx context.Context, limit int64) ([]dto.MessageDescriptor, error) {
	args := m.Called(ctx, limit)
	d, _ := args.Get(0).([]dto.MessageDescriptor)

	return d, args.Error(1)
}

func (m *mockLister) Slideshow(ctx context.Context) ([]dto.MessageDescriptor, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]dto.MessageDescriptor)

	return d, args.Error(1)
}

func (m *mockLister) Geolocations(ctx context.Context) ([]dto.MessageDescriptor, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]dto.MessageDescriptor)

	return d, args.Error(1)
}

type mockThumbnailer struct{ mock.Mock }

func (m *mockThumbnailer) Thumbnail(ctx context.Context, messageID string, size model.Size, fit bool) ([]byte, error) {
	args := m.Called(ctx, messageID, size, fit)
	data, _ := args.Get(0).([]byte)

	return data, args.Error(1)
}
