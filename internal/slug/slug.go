package slug

import (
	"context"
	"fmt"

	gslug "github.com/gosimple/slug"
	"github.com/rs/zerolog"
)

// Checker reports whether a slug is already taken in the catalogue.
type Checker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// Allocator derives URL-safe product slugs and guarantees uniqueness against
// the catalogue store by probing candidate, candidate-1, candidate-2, …
//
// The probe is not atomic: two concurrent creations with the same name can
// race to the same candidate. The unique constraint on products.slug is the
// backstop; acceptable at this system's write concurrency.
type Allocator struct {
	checker Checker
	logger  zerolog.Logger
}

// NewAllocator creates a slug allocator backed by the given checker.
func NewAllocator(checker Checker, logger zerolog.Logger) *Allocator {
	return &Allocator{
		checker: checker,
		logger:  logger.With().Str("component", "slug-allocator").Logger(),
	}
}

// Make derives the lowercase, hyphenated, ASCII-safe base candidate for a name.
func Make(name string) string {
	return gslug.Make(name)
}

// Allocate returns the first unused slug for the given display name. It only
// fails when the underlying store is unreachable; otherwise it terminates
// because the probe space is unbounded.
func (a *Allocator) Allocate(ctx context.Context, name string) (string, error) {
	base := Make(name)
	candidate := base

	for i := 1; ; i++ {
		exists, err := a.checker.SlugExists(ctx, candidate)
		if err != nil {
			a.logger.Error().Err(err).Str("candidate", candidate).Msg("slug probe failed")
			return "", fmt.Errorf("failed to probe slug %q: %w", candidate, err)
		}
		if !exists {
			if candidate != base {
				a.logger.Debug().
					Str("base", base).
					Str("slug", candidate).
					Msg("base slug taken, allocated suffixed slug")
			}
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
