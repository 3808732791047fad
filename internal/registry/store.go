// Package registry keeps ordered, id-keyed collections of records and the
// validated services and HTTP handlers built on top of them.
package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"legalflow/pkg/domain"
	"legalflow/pkg/platform/sentinel"
	"legalflow/pkg/requestcontext"
)

// Record constrains P to be a pointer to T carrying a Stamp.
type Record[T any] interface {
	*T
	domain.Stamped
}

// Repository is the persistence boundary for one entity kind. Store is the
// in-memory implementation; a database-backed one would satisfy the same
// contract.
type Repository[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	DeleteWhere(ctx context.Context, match func(T) bool) (int, error)
}

// Cloner is implemented by records holding pointers or slices. The store
// clones such records on the way in and out so callers never share memory
// with a stored record.
type Cloner[T any] interface {
	Clone() T
}

// Store is an in-memory Repository. Insertion order is the listing order.
// Records are held by value; callers get copies and replace whole records.
type Store[T any, P Record[T]] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
}

// NewStore creates an empty store.
func NewStore[T any, P Record[T]]() *Store[T, P] {
	return &Store[T, P]{items: make(map[string]T)}
}

// Create assigns a fresh id and today's registration date, overwriting any
// stamp the caller supplied.
func (s *Store[T, P]) Create(ctx context.Context, rec T) (T, error) {
	stamp := P(&rec).StampRef()
	stamp.ID = uuid.NewString()
	stamp.RegisteredOn = domain.DateOf(requestcontext.Now(ctx))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[stamp.ID] = detach(rec)
	s.order = append(s.order, stamp.ID)
	return rec, nil
}

// Update replaces the record body, keeping the stored id and registration date.
func (s *Store[T, P]) Update(_ context.Context, id string, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("record %s: %w", id, sentinel.ErrNotFound)
	}
	*P(&rec).StampRef() = *P(&existing).StampRef()
	s.items[id] = detach(rec)
	return rec, nil
}

func (s *Store[T, P]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("record %s: %w", id, sentinel.ErrNotFound)
	}
	delete(s.items, id)
	s.removeFromOrder(id)
	return nil
}

func (s *Store[T, P]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("record %s: %w", id, sentinel.ErrNotFound)
	}
	return detach(rec), nil
}

func (s *Store[T, P]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, detach(s.items[id]))
	}
	return out, nil
}

// DeleteWhere removes every record matching match and returns how many went.
func (s *Store[T, P]) DeleteWhere(_ context.Context, match func(T) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		if match(s.items[id]) {
			delete(s.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	clear(s.order[len(kept):])
	s.order = kept
	return removed, nil
}

func detach[T any](rec T) T {
	if c, ok := any(rec).(Cloner[T]); ok {
		return c.Clone()
	}
	return rec
}

func (s *Store[T, P]) removeFromOrder(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
