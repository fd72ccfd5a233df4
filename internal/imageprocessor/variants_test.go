package imageprocessor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gob26/beautycity/internal/storage"
)

func newGenerator(t *testing.T) (*Generator, *storage.LocalStorage) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalStorage(root, "/media")
	require.NoError(t, err)
	gen := NewGenerator(NewProcessor(85), store, storage.NewPathResolver(root), 2)
	return gen, store
}

func baseRequest(t *testing.T) GenerateRequest {
	t.Helper()
	return GenerateRequest{
		Data:       pngBytes(t, newOpaqueImage(1200, 900)),
		City:       "moscow",
		Role:       "salon",
		EntitySlug: "nail-bar",
		ImageType:  "gallery",
		BaseName:   "photo_abc123.png",
		Sizes: []VariantSpec{
			{Name: "small", MaxDim: 300},
			{Name: "medium", MaxDim: 800},
		},
		Quality:  85,
		BudgetKB: 700,
	}
}

func TestGenerateProducesAllVariantsPlusOriginal(t *testing.T) {
	gen, store := newGenerator(t)

	set, err := gen.Generate(context.Background(), baseRequest(t))
	require.NoError(t, err)

	assert.Equal(t, 1200, set.Width)
	assert.Equal(t, 900, set.Height)
	assert.Equal(t, "png", set.Format)
	assert.Empty(t, set.Failed())

	paths := set.Paths()
	require.Len(t, paths, 3)
	for _, name := range []string{"small", "medium", "original"} {
		relPath, ok := paths[name]
		require.True(t, ok, "missing variant %s", name)
		assert.True(t, strings.HasPrefix(relPath, "moscow/salon/nail-bar/gallery/"), relPath)
		assert.True(t, strings.HasSuffix(relPath, "_"+name+".jpg"), relPath)

		exists, err := store.Exists(context.Background(), relPath)
		require.NoError(t, err)
		assert.True(t, exists, "variant file %s not written", relPath)
	}
}

func TestGenerateVariantDimensions(t *testing.T) {
	gen, store := newGenerator(t)
	proc := NewProcessor(85)

	set, err := gen.Generate(context.Background(), baseRequest(t))
	require.NoError(t, err)
	paths := set.Paths()

	checks := map[string]int{"small": 300, "medium": 800}
	for name, maxDim := range checks {
		r, err := store.Get(context.Background(), paths[name])
		require.NoError(t, err)
		img, _, err := proc.Decode(r)
		r.Close()
		require.NoError(t, err)

		w, h := Dimensions(img)
		assert.LessOrEqual(t, w, maxDim, "%s width", name)
		assert.LessOrEqual(t, h, maxDim, "%s height", name)
		assert.Equal(t, maxDim, max(w, h), "%s longer side should hit the bound exactly", name)
	}

	// The original variant is re-encoded but never resized.
	r, err := store.Get(context.Background(), paths["original"])
	require.NoError(t, err)
	img, _, err := proc.Decode(r)
	r.Close()
	require.NoError(t, err)
	w, h := Dimensions(img)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 900, h)
}

func TestGenerateFailsFastOnUndecodableInput(t *testing.T) {
	gen, _ := newGenerator(t)

	req := baseRequest(t)
	req.Data = []byte("not an image at all")

	_, err := gen.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// failingStorage rejects writes whose path contains a marker substring.
type failingStorage struct {
	inner  storage.Storage
	marker string
}

func (f *failingStorage) Save(ctx context.Context, path string, reader io.Reader) error {
	if strings.Contains(path, f.marker) {
		return errors.New("disk full")
	}
	return f.inner.Save(ctx, path, reader)
}

func (f *failingStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return f.inner.Get(ctx, path)
}

func (f *failingStorage) Delete(ctx context.Context, path string) error {
	return f.inner.Delete(ctx, path)
}

func (f *failingStorage) Exists(ctx context.Context, path string) (bool, error) {
	return f.inner.Exists(ctx, path)
}

func (f *failingStorage) URL(path string) string {
	return f.inner.URL(path)
}

func TestGenerateReportsPartialFailure(t *testing.T) {
	root := t.TempDir()
	local, err := storage.NewLocalStorage(root, "/media")
	require.NoError(t, err)
	store := &failingStorage{inner: local, marker: "_medium"}
	gen := NewGenerator(NewProcessor(85), store, storage.NewPathResolver(root), 2)

	set, err := gen.Generate(context.Background(), baseRequest(t))
	require.NoError(t, err, "a single variant failure must not abort the image")

	paths := set.Paths()
	assert.Contains(t, paths, "small")
	assert.Contains(t, paths, "original")
	assert.NotContains(t, paths, "medium")

	failed := set.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "medium", failed[0].Name)
	assert.Error(t, failed[0].Err)
}

func TestGenerateHonorsCancellation(t *testing.T) {
	gen, _ := newGenerator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, baseRequest(t))
	assert.ErrorIs(t, err, context.Canceled)
}
