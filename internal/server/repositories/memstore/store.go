// Package memstore is an in-process implementation of content.Repository,
// used when the server runs without a database and in handler tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
)

// Ptr constrains P to be *T implementing models.Entity.
type Ptr[T any] interface {
	*T
	models.Entity
}

// Options describe collection-specific behaviour.
type Options[T any] struct {
	// Match reports whether item passes filter. Nil matches everything.
	Match func(item *T, filter models.ListFilter) bool
	// Less orders listings. Nil keeps creation order.
	Less func(a, b *T) bool
}

// Store keeps copies of items keyed by id.
type Store[T any, P Ptr[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	opts  Options[T]
}

func New[T any, P Ptr[T]](opts Options[T]) *Store[T, P] {
	return &Store[T, P]{items: make(map[string]T), opts: opts}
}

func (s *Store[T, P]) List(_ context.Context, filter models.ListFilter) ([]*T, error) {
	s.mu.RLock()
	out := make([]*T, 0, len(s.items))
	for _, v := range s.items {
		item := v
		if s.opts.Match != nil && !s.opts.Match(&item, filter) {
			continue
		}
		out = append(out, &item)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if s.opts.Less != nil {
			if s.opts.Less(out[i], out[j]) {
				return true
			}
			if s.opts.Less(out[j], out[i]) {
				return false
			}
		}
		return P(out[i]).Created().Before(P(out[j]).Created())
	})
	return out, nil
}

func (s *Store[T, P]) Get(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &v, nil
}

func (s *Store[T, P]) Create(_ context.Context, item *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[P(item).GetID()] = *item
	return item, nil
}

// Update replaces the stored item and keeps its original creation time.
func (s *Store[T, P]) Update(_ context.Context, item *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := P(item).GetID()
	old, ok := s.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	p := P(item)
	p.Stamp(P(&old).Created(), p.Updated())
	s.items[id] = *item
	return item, nil
}

func (s *Store[T, P]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.items, id)
	return nil
}
