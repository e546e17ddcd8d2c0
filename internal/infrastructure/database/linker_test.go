package database

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgboard/internal/domain/model"
)

func TestLinkThumbOnce(t *testing.T) {
	t.Parallel()

	db := connectTestDB(t)
	ctx := context.Background()

	msg := validMessage()
	require.NoError(t, NewMessageWriter(db).Write(ctx, msg))

	linker := NewThumbLinker(db)
	size := model.Size{Width: 80, Height: 60}

	first := primitive.NewObjectID()
	linked, err := linker.Link(ctx, msg.ID, size, first)
	require.NoError(t, err)
	assert.True(t, linked)

	linked, err = linker.Link(ctx, msg.ID, size, primitive.NewObjectID())
	require.NoError(t, err)
	assert.False(t, linked)

	linked, err = linker.Link(ctx, msg.ID, model.Size{Width: 120, Height: 90}, primitive.NewObjectID())
	require.NoError(t, err)
	assert.True(t, linked)

	got, err := NewMessageRetriever(db).GetByID(ctx, msg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, first, got.Thumbs["80x60"])
	assert.Len(t, got.Thumbs, 2)
}

func TestLinkThumbConcurrentSingleWinner(t *testing.T) {
	t.Parallel()

	db := connectTestDB(t)
	ctx := context.Background()

	msg := validMessage()
	require.NoError(t, NewMessageWriter(db).Write(ctx, msg))

	linker := NewThumbLinker(db)
	size := model.Size{Width: 80, Height: 60}

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			linked, err := linker.Link(ctx, msg.ID, size, primitive.NewObjectID())
			assert.NoError(t, err)
			if linked {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRemoveThumb(t *testing.T) {
	t.Parallel()

	db := connectTestDB(t)
	ctx := context.Background()

	thumb := &model.Thumb{Image: []byte{1, 2, 3}, Size: "80x60", Message: primitive.NewObjectID()}
	require.NoError(t, NewThumbWriter(db).Write(ctx, thumb))
	require.NoError(t, NewThumbRemover(db).RemoveByID(ctx, thumb.ID))

	_, err := NewThumbRetriever(db).GetByID(ctx, thumb.ID)
	assert.ErrorIs(t, err, model.ErrThumbNotFound)
}
