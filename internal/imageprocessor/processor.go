package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned when the byte stream is not a decodable
// raster image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Quality bounds for the encode-under-budget loop.
const (
	DefaultQuality = 85
	MinQuality     = 5
	QualityStep    = 5
)

// Processor is a pure in-memory image transformer: decode, color
// normalization, aspect-preserving resize and budgeted JPEG encoding.
type Processor struct {
	quality int // starting JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Processor{quality: quality}
}

// Quality returns the configured starting quality.
func (p *Processor) Quality() int {
	return p.quality
}

// Decode parses arbitrary uploaded bytes into a bitmap. The returned format
// is the registered name ("jpeg", "png", "gif").
func (p *Processor) Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return img, format, nil
}

// NormalizeColor composites images that carry an alpha channel onto an
// opaque white background. Already-opaque images are returned unchanged.
func (p *Processor) NormalizeColor(img image.Image) image.Image {
	if isOpaque(img) {
		return img
	}

	bounds := img.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}

// Resize scales the image down so its longer side is exactly maxDim,
// preserving aspect ratio. Images already within bounds are returned
// unchanged; nothing is ever upscaled. Lanczos resampling.
func (p *Processor) Resize(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}

// EncodeUnderBudget encodes to JPEG, stepping quality down by QualityStep
// until the output fits maxSizeKB or quality reaches MinQuality. It never
// fails for a valid bitmap: at the floor the smallest achieved encoding is
// returned regardless of size.
func (p *Processor) EncodeUnderBudget(img image.Image, startQuality, maxSizeKB int) ([]byte, error) {
	if startQuality <= 0 || startQuality > 100 {
		startQuality = p.quality
	}

	budget := maxSizeKB * 1024
	var best []byte

	for quality := startQuality; quality >= MinQuality; quality -= QualityStep {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, fmt.Errorf("jpeg encode at quality %d: %w", quality, err)
		}

		if best == nil || buf.Len() < len(best) {
			best = buf.Bytes()
		}
		if buf.Len() <= budget {
			return buf.Bytes(), nil
		}
	}

	return best, nil
}

// Dimensions reports image width and height.
func Dimensions(img image.Image) (width, height int) {
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// isOpaque checks the Opaque fast path when the concrete type provides one,
// falling back to an alpha scan.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
