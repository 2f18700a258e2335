// Package ports defines interfaces for the catalog's collaborators.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter on anything that crosses a process boundary
//   - Return domain types, never file records or other infrastructure types
//   - Error returns use domain error types (ErrStorage, ErrSchema, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/go-appstore/internal/domain"
)

// Snapshot is the unit of persistence: the registered developers and the
// ordered app collection. Apps that reference the same developer share one
// *domain.Developer, and that developer need not appear in Developers.
type Snapshot struct {
	Developers []*domain.Developer
	Apps       []domain.App
}

// CatalogStore persists and restores a catalog snapshot.
//
// Example usage in application layer:
//
//	snap, err := store.Load(ctx)
//	if errors.Is(err, fs.ErrNotExist) {
//	    // start with an empty catalog
//	}
type CatalogStore interface {
	// Save writes the snapshot to the store target, replacing whatever
	// was there. Returns a *domain.StorageError on I/O failure.
	Save(ctx context.Context, snap *Snapshot) error

	// Load reads the snapshot from the store target.
	// Returns a *domain.StorageError on I/O failure (a missing target
	// unwraps to fs.ErrNotExist) and a *domain.SchemaError when the
	// content does not match the document schema.
	Load(ctx context.Context) (*Snapshot, error)

	// Location describes the store target, typically a file path.
	Location() string
}

// RandomSource supplies uniformly distributed integers.
// Implementations need not be safe for concurrent use.
type RandomSource interface {
	// IntN returns a value in [0, n). It returns 0 when n <= 0.
	IntN(n int) int
}

// RatingGenerator produces ratings for simulated user feedback.
type RatingGenerator interface {
	// Generate returns one rating with stars in [1,5].
	Generate(ctx context.Context) (domain.Rating, error)
}
