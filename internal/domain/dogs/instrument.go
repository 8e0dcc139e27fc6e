package dogs

import (
	"context"
	"errors"
	"time"
)

// Resultados reportados al Observer.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Observer recibe una muestra por cada llamada al Store.
type Observer interface {
	ObserveStoreCall(op, result string, took time.Duration)
}

type instrumentedStore struct {
	next Store
	obs  Observer
	now  func() time.Time
}

// Instrument envuelve un Store reportando operación, resultado y duración.
// Si obs es nil devuelve el Store sin tocar.
func Instrument(next Store, obs Observer) Store {
	if obs == nil {
		return next
	}
	return &instrumentedStore{next: next, obs: obs, now: time.Now}
}

func (s *instrumentedStore) observe(op string, start time.Time, err error) {
	result := ResultOK
	switch {
	case errors.Is(err, ErrNotFound):
		result = ResultNotFound
	case err != nil:
		result = ResultError
	}
	s.obs.ObserveStoreCall(op, result, s.now().Sub(start))
}

func (s *instrumentedStore) FindAll(ctx context.Context) ([]Dog, error) {
	start := s.now()
	out, err := s.next.FindAll(ctx)
	s.observe("find_all", start, err)
	return out, err
}

func (s *instrumentedStore) FindByID(ctx context.Context, id string) (Dog, error) {
	start := s.now()
	d, err := s.next.FindByID(ctx, id)
	s.observe("find_by_id", start, err)
	return d, err
}

func (s *instrumentedStore) Create(ctx context.Context, in NewDog) (Dog, error) {
	start := s.now()
	d, err := s.next.Create(ctx, in)
	s.observe("create", start, err)
	return d, err
}

func (s *instrumentedStore) Update(ctx context.Context, id string, p Patch) (Dog, error) {
	start := s.now()
	d, err := s.next.Update(ctx, id, p)
	s.observe("update", start, err)
	return d, err
}

func (s *instrumentedStore) Delete(ctx context.Context, id string) (Dog, error) {
	start := s.now()
	d, err := s.next.Delete(ctx, id)
	s.observe("delete", start, err)
	return d, err
}
