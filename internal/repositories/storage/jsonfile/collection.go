package jsonfile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
)

// Collection is a typed view over one collection file. The type parameter PT
// ties the record type to its embedded RecordMeta so the store can manage the
// id and timestamps without reflection.
type Collection[T any, PT interface {
	*T
	domain.Keyed
}] struct {
	store *Store
	name  string
}

// NewCollection binds a record type to a named collection of the store.
// The name doubles as the JSON wrapper key and the file basename.
func NewCollection[T any, PT interface {
	*T
	domain.Keyed
}](store *Store, name string) *Collection[T, PT] {
	return &Collection[T, PT]{store: store, name: name}
}

func (c *Collection[T, PT]) load() ([]T, error) {
	var records []T
	if err := c.store.readDoc(c.name, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadAll returns every record in insertion order; a collection that has never
// been written reads as empty.
func (c *Collection[T, PT]) ReadAll(ctx context.Context) ([]T, error) {
	lock := c.store.lockFor(c.name)
	lock.Lock()
	defer lock.Unlock()
	return c.load()
}

// FindByID returns the record with the given id or an ErrNotFound-wrapped error.
func (c *Collection[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	lock := c.store.lockFor(c.name)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if PT(&records[i]).Meta().ID == id {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q", apperrors.ErrNotFound, c.name, id)
}

// FindBy returns the records matching pred, preserving insertion order.
func (c *Collection[T, PT]) FindBy(ctx context.Context, pred func(T) bool) ([]T, error) {
	lock := c.store.lockFor(c.name)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.load()
	if err != nil {
		return nil, err
	}
	matched := make([]T, 0)
	for _, rec := range records {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Create assigns a fresh id unless the caller supplied one, stamps the record
// metadata, appends and persists. Supplying an id that already exists is a
// conflict.
func (c *Collection[T, PT]) Create(ctx context.Context, rec T) (*T, error) {
	lock := c.store.lockFor(c.name)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.load()
	if err != nil {
		return nil, err
	}

	meta := PT(&rec).Meta()
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	} else {
		for i := range records {
			if PT(&records[i]).Meta().ID == meta.ID {
				return nil, fmt.Errorf("%w: %s %q", apperrors.ErrConflict, c.name, meta.ID)
			}
		}
	}
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	records = append(records, rec)
	if err := c.store.writeDoc(c.name, records); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update applies mutate to the stored record under the collection lock. The id
// and CreatedAt are forced unchanged and UpdatedAt is refreshed, whatever the
// mutator did to them.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, mutate func(*T)) (*T, error) {
	return c.TryUpdate(ctx, id, func(rec *T) error {
		mutate(rec)
		return nil
	})
}

// TryUpdate is Update with a mutator that may refuse the change. When mutate
// returns an error nothing is written and the file keeps its previous content,
// UpdatedAt included; the mutator's error is returned as-is.
func (c *Collection[T, PT]) TryUpdate(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	lock := c.store.lockFor(c.name)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		meta := PT(&records[i]).Meta()
		if meta.ID != id {
			continue
		}
		createdAt := meta.CreatedAt
		if err := mutate(&records[i]); err != nil {
			return nil, err
		}
		meta = PT(&records[i]).Meta()
		meta.ID = id
		meta.CreatedAt = createdAt
		meta.UpdatedAt = time.Now().UTC()
		if err := c.store.writeDoc(c.name, records); err != nil {
			return nil, err
		}
		rec := records[i]
		return &rec, nil
	}
	return nil, fmt.Errorf("%w: %s %q", apperrors.ErrNotFound, c.name, id)
}

// Delete removes the record with the given id. A missing id is not an error;
// it reports false.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	lock := c.store.lockFor(c.name)
	lock.Lock()
	defer lock.Unlock()

	records, err := c.load()
	if err != nil {
		return false, err
	}
	for i := range records {
		if PT(&records[i]).Meta().ID == id {
			records = append(records[:i], records[i+1:]...)
			if err := c.store.writeDoc(c.name, records); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of records in the collection.
func (c *Collection[T, PT]) Count(ctx context.Context) (int, error) {
	records, err := c.ReadAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Exists reports whether a record with the given id is present.
func (c *Collection[T, PT]) Exists(ctx context.Context, id string) (bool, error) {
	records, err := c.ReadAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range records {
		if PT(&records[i]).Meta().ID == id {
			return true, nil
		}
	}
	return false, nil
}
