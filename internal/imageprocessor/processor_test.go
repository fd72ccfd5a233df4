package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpaqueImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	return img
}

func newTranslucentImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 0, B: 0, A: 128})
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeRejectsNonImage(t *testing.T) {
	p := NewProcessor(85)

	_, _, err := p.Decode(strings.NewReader("certainly not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeValidPNG(t *testing.T) {
	p := NewProcessor(85)

	img, format, err := p.Decode(bytes.NewReader(pngBytes(t, newOpaqueImage(10, 20))))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	w, h := Dimensions(img)
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
}

func TestResizeScalesLongerSideDown(t *testing.T) {
	p := NewProcessor(85)

	resized := p.Resize(newOpaqueImage(400, 300), 100)
	w, h := Dimensions(resized)
	assert.Equal(t, 100, w, "longer side should be scaled to exactly the bound")
	assert.Equal(t, 75, h)

	// Portrait orientation
	resized = p.Resize(newOpaqueImage(300, 400), 100)
	w, h = Dimensions(resized)
	assert.Equal(t, 75, w)
	assert.Equal(t, 100, h)
}

func TestResizeNeverUpscales(t *testing.T) {
	p := NewProcessor(85)

	src := newOpaqueImage(50, 40)
	out := p.Resize(src, 100)

	w, h := Dimensions(out)
	assert.Equal(t, 50, w)
	assert.Equal(t, 40, h)
	// A no-op resize returns the same bitmap, not a copy.
	assert.Same(t, src, out)
}

func TestNormalizeColorComposesAlphaOntoWhite(t *testing.T) {
	p := NewProcessor(85)

	out := p.NormalizeColor(newTranslucentImage(8, 8))
	_, _, _, a := out.At(4, 4).RGBA()
	assert.Equal(t, uint32(0xffff), a, "normalized image must be fully opaque")

	// Half-transparent red over white should be noticeably lighter than
	// pure red.
	r, g, b, _ := out.At(4, 4).RGBA()
	assert.Greater(t, g, uint32(0x3000))
	assert.Greater(t, b, uint32(0x3000))
	assert.Greater(t, r, g)
}

func TestNormalizeColorLeavesOpaqueImagesAlone(t *testing.T) {
	p := NewProcessor(85)

	src := newOpaqueImage(8, 8)
	out := p.NormalizeColor(src)
	assert.Same(t, src, out)
}

func TestEncodeUnderBudgetFitsBudget(t *testing.T) {
	p := NewProcessor(85)

	data, err := p.EncodeUnderBudget(newOpaqueImage(600, 400), 85, 50)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.LessOrEqual(t, len(data), 50*1024)
}

func TestEncodeUnderBudgetNeverFailsOnTinyBudget(t *testing.T) {
	p := NewProcessor(85)

	// 1KB is unreachable for this image even at the floor; the smallest
	// achieved encoding must still be returned.
	data, err := p.EncodeUnderBudget(newOpaqueImage(600, 400), 85, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestEncodeUnderBudgetMonotonic(t *testing.T) {
	p := NewProcessor(85)
	img := newOpaqueImage(600, 400)

	tight, err := p.EncodeUnderBudget(img, 85, 20)
	require.NoError(t, err)
	loose, err := p.EncodeUnderBudget(img, 85, 500)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(loose), len(tight),
		"a higher budget must never produce a smaller converged output than a lower one")
}
