package memory

import (
	"context"
	"sort"
	"sync"

	"dogs-api/internal/domain/dogs"

	"github.com/google/uuid"
)

type entry struct {
	dog dogs.Dog
	seq uint64
}

type dogStore struct {
	mu   sync.RWMutex
	byID map[string]entry
	seq  uint64

	newID func() string
}

// NewDogStore crea el Store in-memory (modo dev y tests).
func NewDogStore() dogs.Store {
	return &dogStore{
		byID:  make(map[string]entry),
		newID: uuid.NewString,
	}
}

func (s *dogStore) FindAll(ctx context.Context) ([]dogs.Dog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]entry, 0, len(s.byID))
	for _, e := range s.byID {
		entries = append(entries, e)
	}

	// Orden de inserción, igual que el ORDER BY de los stores SQL.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	out := make([]dogs.Dog, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.dog)
	}
	return out, nil
}

func (s *dogStore) FindByID(ctx context.Context, id string) (dogs.Dog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return e.dog, nil
}

func (s *dogStore) Create(ctx context.Context, in dogs.NewDog) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	d := dogs.Dog{
		ID:     s.newID(),
		Name:   in.Name,
		Weight: in.Weight,
	}
	s.byID[d.ID] = entry{dog: d, seq: s.seq}
	return d, nil
}

func (s *dogStore) Update(ctx context.Context, id string, p dogs.Patch) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	e.dog = p.Apply(e.dog)
	s.byID[id] = e
	return e.dog, nil
}

func (s *dogStore) Delete(ctx context.Context, id string) (dogs.Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	delete(s.byID, id)
	return e.dog, nil
}
