package minio

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"msgboard/internal/domain/model"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-tests"
)

func setupMinio(t *testing.T) *minio.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := New(&ClientConfig{
		AccessKey: TestAccessKey,
		SecretKey: TestSecretKey,
		Endpoint:  endpoint,
	})
	if err != nil {
		t.Fatal("Failed to create minio client:", err)
	}

	if err := client.EnsureBucket(ctx, BucketName); err != nil {
		t.Fatal("Failed to create bucket:", err)
	}

	// a second call must be a no-op
	require.NoError(t, client.EnsureBucket(ctx, BucketName))

	return client.MinioClient
}

func pngImage(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for x := 0; x < 16; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestUploadGetRemove(t *testing.T) {
	client := setupMinio(t)
	ctx := context.Background()

	uploader := NewUploader(client, &UploaderConfig{Timeout: 3000, Bucket: BucketName})
	getter := NewGetter(client, &GetterConfig{Timeout: 3000})
	remover := NewRemover(client, &RemoverConfig{Timeout: 3000})

	content := pngImage(t)

	stored, err := uploader.Upload(ctx, content)
	require.NoError(t, err)
	assert.Equal(t, BucketName, stored.Bucket)
	assert.Equal(t, "image/png", stored.ContentType)
	assert.Equal(t, int64(len(content)), stored.Size)
	assert.Regexp(t, `^[0-9a-f\-]{36}\.png$`, stored.Object)

	info, err := client.StatObject(ctx, BucketName, stored.Object, minio.StatObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "image/png", info.ContentType)

	got, err := getter.Get(ctx, stored.Bucket, stored.Object)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, remover.Remove(ctx, stored.Bucket, stored.Object))

	_, err = getter.Get(ctx, stored.Bucket, stored.Object)
	assert.Error(t, err)
}

func TestUploadRejectsNonImages(t *testing.T) {
	client := setupMinio(t)
	uploader := NewUploader(client, &UploaderConfig{Timeout: 3000, Bucket: BucketName})

	tests := []struct {
		name    string
		content []byte
		notImg  bool
	}{
		{name: "plain text", content: []byte("hello, world!"), notImg: true},
		{name: "svg", content: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`), notImg: true},
		{name: "empty", content: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uploader.Upload(context.Background(), tc.content)
			require.Error(t, err)
			assert.Equal(t, tc.notImg, errors.Is(err, model.ErrNotAnImage))
		})
	}

	objects := 0
	for obj := range client.ListObjects(context.Background(), BucketName, minio.ListObjectsOptions{}) {
		require.NoError(t, obj.Err)
		objects++
	}
	assert.Zero(t, objects)
}

func TestNewClientConfig(t *testing.T) {
	t.Parallel()

	client, err := New(&ClientConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", client.MinioClient.EndpointURL().Host)
	assert.Equal(t, "http", client.MinioClient.EndpointURL().Scheme)
}
