// Package session keeps the current dataset of each client session.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/ukaji3/xlchart-go/pkg/xlchart/models"
)

// ErrNotFound indicates the session holds no dataset.
var ErrNotFound = errors.New("session dataset not found")

// Store holds at most one dataset per session. Save replaces the whole
// dataset; stored datasets are never mutated in place.
type Store interface {
	Save(ctx context.Context, sessionID string, ds *models.Dataset) error
	Load(ctx context.Context, sessionID string) (*models.Dataset, error)
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*models.Dataset
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*models.Dataset)}
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = ds
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*models.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.data[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return ds, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
