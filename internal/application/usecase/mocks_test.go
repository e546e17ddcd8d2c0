package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/internal/domain/entity"
	"msgboard/internal/domain/model"
	"msgboard/internal/domain/repository/broker"
)

type mockMessageRetriever struct{ mock.Mock }

func (m *mockMessageRetriever) GetByID(ctx context.Context, id string) (*model.Message, error) {
	args := m.Called(ctx, id)
	msg, _ := args.Get(0).(*model.Message)

	return msg, args.Error(1)
}

type mockMessageWriter struct{ mock.Mock }

func (m *mockMessageWriter) Write(ctx context.Context, msg *model.Message) error {
	args := m.Called(ctx, msg)
	if args.Error(0) == nil && msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}

	return args.Error(0)
}

type mockMessageLister struct{ mock.Mock }

func (m *mockMessageLister) Latest(ctx context.Context, limit int64) ([]model.Message, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]model.Message)

	return msgs, args.Error(1)
}

func (m *mockMessageLister) WithImage(ctx context.Context, limit int64) ([]model.Message, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]model.Message)

	return msgs, args.Error(1)
}

func (m *mockMessageLister) WithGeolocation(ctx context.Context, limit int64) ([]model.Message, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]model.Message)

	return msgs, args.Error(1)
}

type mockThumbRetriever struct{ mock.Mock }

func (m *mockThumbRetriever) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Thumb, error) {
	args := m.Called(ctx, id)
	thumb, _ := args.Get(0).(*model.Thumb)

	return thumb, args.Error(1)
}

type mockThumbWriter struct{ mock.Mock }

func (m *mockThumbWriter) Write(ctx context.Context, thumb *model.Thumb) error {
	args := m.Called(ctx, thumb)
	if thumb.ID.IsZero() {
		thumb.ID = primitive.NewObjectID()
	}

	return args.Error(0)
}

type mockThumbLinker struct{ mock.Mock }

func (m *mockThumbLinker) Link(ctx context.Context, messageID primitive.ObjectID, size model.Size,
	thumbID primitive.ObjectID,
) (bool, error) {
	args := m.Called(ctx, messageID, size, thumbID)

	return args.Bool(0), args.Error(1)
}

type mockThumbRemover struct{ mock.Mock }

func (m *mockThumbRemover) RemoveByID(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockUploader struct{ mock.Mock }

func (m *mockUploader) Upload(ctx context.Context, img []byte) (entity.StoredObject, error) {
	args := m.Called(ctx, img)
	obj, _ := args.Get(0).(entity.StoredObject)

	return obj, args.Error(1)
}

type mockGetter struct{ mock.Mock }

func (m *mockGetter) Get(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	args := m.Called(ctx, bucketName, objectName)
	data, _ := args.Get(0).([]byte)

	return data, args.Error(1)
}

type mockRemover struct{ mock.Mock }

func (m *mockRemover) Remove(ctx context.Context, bucketName, objectName string) error {
	return m.Called(ctx, bucketName, objectName).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, body string) error {
	return m.Called(ctx, body).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)

	return data, args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, key string, data []byte) error {
	return m.Called(ctx, key, data).Error(0)
}

type mockThumbnailer struct{ mock.Mock }

func (m *mockThumbnailer) Thumbnail(ctx context.Context, messageID string, size model.Size, fit bool) ([]byte, error) {
	args := m.Called(ctx, messageID, size, fit)
	data, _ := args.Get(0).([]byte)

	return data, args.Error(1)
}

type mockReceiver struct{ mock.Mock }

func (m *mockReceiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	args := m.Called(ctx, consumerName)
	ch, _ := args.Get(0).(<-chan broker.Message)

	return ch, args.Error(1)
}

type fakeBrokerMessage struct {
	body  string
	acked bool
}

func (f *fakeBrokerMessage) ID() string   { return "1-0" }
func (f *fakeBrokerMessage) Body() string { return f.body }
func (f *fakeBrokerMessage) Ack() error {
	f.acked = true

	return nil
}

func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func strPtr(s string) *string { return &s }
