package memcache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupMemcached(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "memcached:1.6-alpine",
		ExposedPorts: []string{"11211/tcp"},
		WaitingFor:   wait.ForListeningPort("11211/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start memcached container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	return endpoint
}

func TestThumbCache(t *testing.T) {
	c := New(Config{Address: setupMemcached(t), TTL: 60, Timeout: 1000})
	require.IsType(t, &ThumbCache{}, c)

	ctx := context.Background()

	_, ok, err := c.Get(ctx, "thumb:missing:80x60")
	require.NoError(t, err)
	assert.False(t, ok)

	data := []byte{0xff, 0xd8, 0xff, 0xe0}
	require.NoError(t, c.Set(ctx, "thumb:abc:80x60", data))

	got, ok, err := c.Get(ctx, "thumb:abc:80x60")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, data, got)
}

func TestNoopWhenAddressMissing(t *testing.T) {
	t.Parallel()

	c := New(Config{})
	require.IsType(t, Noop{}, c)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", []byte("v")))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}
