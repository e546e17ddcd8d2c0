package exif

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgboard/pkg/geolocation"
)

func TestReadGPSWithoutExif(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	var pngBuf, jpegBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))
	require.NoError(t, jpeg.Encode(&jpegBuf, img, nil))

	for name, data := range map[string][]byte{
		"png":     pngBuf.Bytes(),
		"jpeg":    jpegBuf.Bytes(),
		"garbage": []byte("not an image"),
	} {
		data := data
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := NewReader().ReadGPS(data)
			assert.Error(t, err)

			_, _, ok := geolocation.NewExtractor(NewReader()).Extract(data)
			assert.False(t, ok)
		})
	}
}

func TestNewExtractor(t *testing.T) {
	t.Parallel()

	assert.True(t, NewExtractor(Config{Enabled: true}).Supported())
	assert.False(t, NewExtractor(Config{}).Supported())
}
