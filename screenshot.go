package objview

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// FramebufferImage copies width*height RGBA pixels read back from the GPU
// into an image. The GPU returns the bottom row first, so rows are flipped.
func FramebufferImage(pix []uint8, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("objview: bad framebuffer size %dx%d", width, height)
	}
	stride := width * 4
	if len(pix) < stride*height {
		return nil, fmt.Errorf("objview: framebuffer has %d bytes, want %d", len(pix), stride*height)
	}
	im := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(im.Pix[y*im.Stride:], src)
	}
	return im, nil
}

// Thumbnail scales im down to fit within size x size, keeping its aspect
// ratio. Images that already fit, or a size of 0, are returned unchanged.
func Thumbnail(im image.Image, size uint) image.Image {
	b := im.Bounds()
	if size == 0 || (uint(b.Dx()) <= size && uint(b.Dy()) <= size) {
		return im
	}
	return resize.Thumbnail(size, size, im, resize.Lanczos3)
}

// SavePNG encodes im as a PNG file at path.
func SavePNG(path string, im image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objview: create %s: %w", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, im); err != nil {
		return fmt.Errorf("objview: encode png %s: %w", path, err)
	}
	return file.Close()
}
