package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var segmentCleaner = regexp.MustCompile(`[^a-z0-9_-]+`)

// PathResolver deterministically maps (city, role, entity slug, image type)
// to a directory under the media root. Identical inputs always resolve to
// the identical path; cleanup logic depends on this.
type PathResolver struct {
	root string
}

func NewPathResolver(root string) *PathResolver {
	return &PathResolver{root: root}
}

// Resolve builds the relative directory city/role/slug/imageType and ensures
// it exists under the root. Creation is idempotent.
func (r *PathResolver) Resolve(city, role, entitySlug, imageType string) (string, error) {
	rel := path.Join(
		CleanSegment(city),
		CleanSegment(role),
		CleanSegment(entitySlug),
		CleanSegment(imageType),
	)

	abs := filepath.Join(r.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", fmt.Errorf("failed to create media directory %s: %w", abs, err)
	}

	return rel, nil
}

// CleanSegment normalizes one path segment: lowercase, spaces to dashes,
// everything outside [a-z0-9_-] stripped. Empty segments become "_".
func CleanSegment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = segmentCleaner.ReplaceAllString(s, "")
	if s == "" {
		return "_"
	}
	return s
}
