package repositories

import (
	"context"
)

// RecordRepository is the generic persistence port over one collection of T.
// Implementations must serialize every read-modify-write sequence on the
// collection behind a single per-collection lock.
type RecordRepository[T any] interface {
	// ReadAll returns every record in on-disk (insertion) order. A collection
	// that has never been created reads as empty, not as an error.
	ReadAll(ctx context.Context) ([]T, error)
	// FindByID returns the record or an error wrapping apperrors.ErrNotFound.
	FindByID(ctx context.Context, id string) (*T, error)
	// FindBy returns the records matching pred, in insertion order.
	FindBy(ctx context.Context, pred func(T) bool) ([]T, error)
	// Create assigns a fresh id (unless the caller supplied one), stamps the
	// record metadata, appends and persists.
	Create(ctx context.Context, rec T) (*T, error)
	// Update applies mutate to the stored record under the collection lock,
	// forces the id unchanged, refreshes UpdatedAt and persists.
	Update(ctx context.Context, id string, mutate func(*T)) (*T, error)
	// TryUpdate is Update with a mutator that may refuse the change; when it
	// returns an error nothing is persisted and the error comes back as-is.
	TryUpdate(ctx context.Context, id string, mutate func(*T) error) (*T, error)
	// Delete removes the record; a missing id returns (false, nil).
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Exists(ctx context.Context, id string) (bool, error)
}
