package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathResolverDeterministic(t *testing.T) {
	resolver := NewPathResolver(t.TempDir())

	first, err := resolver.Resolve("Moscow", "salon", "nail-bar", "gallery")
	require.NoError(t, err)
	second, err := resolver.Resolve("Moscow", "salon", "nail-bar", "gallery")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "moscow/salon/nail-bar/gallery", first)
}

func TestPathResolverCreatesDirectory(t *testing.T) {
	root := t.TempDir()
	resolver := NewPathResolver(root)

	rel, err := resolver.Resolve("kazan", "master", "anna", "portfolio")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Re-resolving an existing directory is not an error.
	_, err = resolver.Resolve("kazan", "master", "anna", "portfolio")
	assert.NoError(t, err)
}

func TestCleanSegment(t *testing.T) {
	assert.Equal(t, "nizhny-novgorod", CleanSegment("Nizhny Novgorod"))
	assert.Equal(t, "salon_1", CleanSegment("Salon_1!"))
	assert.Equal(t, "_", CleanSegment("///"))
}

func TestGenerateUniqueNamePreservesExtension(t *testing.T) {
	name := GenerateUniqueName("My Photo.Final.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"), "real (last-dot) extension must survive: %s", name)
	assert.True(t, strings.HasPrefix(name, "my-photofinal_"), "sanitized base must survive: %s", name)
}

func TestGenerateUniqueNameNoCollisions(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		name := GenerateUniqueName("avatar.png")
		_, dup := seen[name]
		require.False(t, dup, "collision on %s", name)
		seen[name] = struct{}{}
	}
}

func TestGenerateUniqueNameTokenEntropy(t *testing.T) {
	name := GenerateUniqueName("a.png")
	// base "a" + "_" + 32 hex chars + ".png"
	parts := strings.Split(strings.TrimSuffix(name, ".png"), "_")
	token := parts[len(parts)-1]
	assert.Len(t, token, 32, "token must carry 128 bits of randomness")
}

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)
	ctx := context.Background()

	err = store.Save(ctx, "moscow/salon/x/gallery/a.jpg", strings.NewReader("payload"))
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "moscow/salon/x/gallery/a.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	r, err := store.Get(ctx, "moscow/salon/x/gallery/a.jpg")
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	assert.Equal(t, "/media/moscow/salon/x/gallery/a.jpg", store.URL("moscow/salon/x/gallery/a.jpg"))
}

func TestLocalStorageDeleteMissingIsNotAnError(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "nope/missing.jpg"))
}
