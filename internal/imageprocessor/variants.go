package imageprocessor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Gob26/beautycity/internal/storage"
)

// VariantSpec names one target rendition and its maximum pixel dimension.
type VariantSpec struct {
	Name   string
	MaxDim int
}

// VariantResult is the per-variant outcome: either a stored relative path or
// the error that prevented it. One variant failing never discards the
// others.
type VariantResult struct {
	Name string
	Path string
	Err  error
}

// VariantSet is the aggregate result for a single uploaded image.
type VariantSet struct {
	Width   int // original bitmap, before any resize
	Height  int
	Format  string
	Results []VariantResult
}

// Paths returns the successful variants as name -> relative path.
func (s *VariantSet) Paths() map[string]string {
	paths := make(map[string]string, len(s.Results))
	for _, r := range s.Results {
		if r.Err == nil {
			paths[r.Name] = r.Path
		}
	}
	return paths
}

// Failed returns the variants that could not be produced.
func (s *VariantSet) Failed() []VariantResult {
	var failed []VariantResult
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// GenerateRequest describes one image to fan out into variants.
type GenerateRequest struct {
	Data       []byte // raw uploaded bytes
	City       string
	Role       string
	EntitySlug string
	ImageType  string
	BaseName   string // unique file name, extension preserved
	Sizes      []VariantSpec
	Quality    int // starting JPEG quality
	BudgetKB   int // per-variant size budget
}

// Generator orchestrates the codec, path resolver and storage to produce a
// full variant set (named sizes plus an unresized "original") from one
// upload.
type Generator struct {
	processor   *Processor
	storage     storage.Storage
	resolver    *storage.PathResolver
	parallelism int
}

func NewGenerator(processor *Processor, store storage.Storage, resolver *storage.PathResolver, parallelism int) *Generator {
	if parallelism <= 0 {
		parallelism = 4
	}
	return &Generator{
		processor:   processor,
		storage:     store,
		resolver:    resolver,
		parallelism: parallelism,
	}
}

// Generate decodes once, normalizes color once, then renders every named
// size plus "original" from the shared normalized bitmap, never from a
// previously resized variant. Decode failure aborts the whole image; any
// later failure is reported per variant in the returned set.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*VariantSet, error) {
	img, format, err := g.processor.Decode(bytes.NewReader(req.Data))
	if err != nil {
		return nil, err
	}

	width, height := Dimensions(img)
	normalized := g.processor.NormalizeColor(img)

	dir, err := g.resolver.Resolve(req.City, req.Role, req.EntitySlug, req.ImageType)
	if err != nil {
		return nil, err
	}

	specs := make([]VariantSpec, 0, len(req.Sizes)+1)
	specs = append(specs, req.Sizes...)
	// The stored "original" is the normalized, unresized encode, not the
	// raw uploaded bytes.
	specs = append(specs, VariantSpec{Name: "original", MaxDim: 0})

	set := &VariantSet{
		Width:   width,
		Height:  height,
		Format:  format,
		Results: make([]VariantResult, len(specs)),
	}

	base := strings.TrimSuffix(req.BaseName, filepath.Ext(req.BaseName))

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(g.parallelism)

	for i, spec := range specs {
		i, spec := i, spec
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			set.Results[i] = g.renderVariant(grpCtx, normalized, spec, dir, base, req)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		// Only context cancellation reaches here; per-variant errors stay in
		// the result slots.
		return nil, err
	}

	return set, nil
}

// renderVariant resizes (unless this is the original), encodes under the
// byte budget and writes the file. The normalized source bitmap is shared
// and read-only.
func (g *Generator) renderVariant(ctx context.Context, src image.Image, spec VariantSpec, dir, base string, req GenerateRequest) VariantResult {
	result := VariantResult{Name: spec.Name}

	img := src
	if spec.MaxDim > 0 {
		img = g.processor.Resize(src, spec.MaxDim)
	}

	data, err := g.processor.EncodeUnderBudget(img, req.Quality, req.BudgetKB)
	if err != nil {
		result.Err = fmt.Errorf("encode variant %s: %w", spec.Name, err)
		return result
	}

	relPath := path.Join(dir, fmt.Sprintf("%s_%s.jpg", base, spec.Name))
	if err := g.storage.Save(ctx, relPath, bytes.NewReader(data)); err != nil {
		result.Err = fmt.Errorf("store variant %s: %w", spec.Name, err)
		return result
	}

	result.Path = relPath
	return result
}
