package gui

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"galleray/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.png")
	writePNG(t, path)

	img, err := decodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = decodeImage(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.True(t, errors.IsImageDecodeFailure(err))

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = decodeImage(garbage)
	require.Error(t, err)
	assert.True(t, errors.IsImageDecodeFailure(err))
}

func TestThumbnail(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 400, 100))
	thumb := thumbnail(wide, 128)
	assert.Equal(t, 128, thumb.Bounds().Dx())
	assert.Equal(t, 32, thumb.Bounds().Dy())

	tall := image.NewRGBA(image.Rect(0, 0, 100, 400))
	thumb = thumbnail(tall, 128)
	assert.Equal(t, 32, thumb.Bounds().Dx())
	assert.Equal(t, 128, thumb.Bounds().Dy())

	small := image.NewRGBA(image.Rect(0, 0, 50, 50))
	assert.Same(t, small, thumbnail(small, 128), "small images pass through unscaled")
}
