package objview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferImageFlips(t *testing.T) {
	// bottom row red, top row blue
	pix := []uint8{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	im, err := FramebufferImage(pix, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, im.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, im.NRGBAAt(1, 1))
}

func TestFramebufferImageErrors(t *testing.T) {
	_, err := FramebufferImage(make([]uint8, 4), 2, 2)
	assert.Error(t, err)
	_, err = FramebufferImage(nil, 0, 2)
	assert.Error(t, err)
}

func TestThumbnail(t *testing.T) {
	im := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	small := Thumbnail(im, 20)
	assert.Equal(t, 20, small.Bounds().Dx())
	assert.Equal(t, 10, small.Bounds().Dy())

	assert.Same(t, im, Thumbnail(im, 0))
	assert.Same(t, im, Thumbnail(im, 200))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	im := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	require.NoError(t, SavePNG(path, im))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
}
