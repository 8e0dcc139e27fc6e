package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"dogs-api/internal/domain/dogs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DogsStore {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "data", "dogs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	applied, err := Migrate(ctx, db)
	require.NoError(t, err)
	require.Equal(t, []string{"0001_create_dogs"}, applied)

	return NewDogsStore(db)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestOpen_InMemory(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = Migrate(ctx, db)
	require.NoError(t, err)

	s := NewDogsStore(db)
	d, err := s.Create(ctx, dogs.NewDog{Name: "Rex", Weight: 1})
	require.NoError(t, err)
	got, err := s.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestMigrate_SecondRunIsNoop(t *testing.T) {
	s := newTestStore(t)

	applied, err := Migrate(context.Background(), s.db)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestDogsStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Create(ctx, dogs.NewDog{Name: "Rex", Weight: 12.5})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Rex", created.Name)
	assert.Equal(t, 12.5, created.Weight)

	got, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	weight := 13.0
	updated, err := s.Update(ctx, created.ID, dogs.Patch{Weight: &weight})
	require.NoError(t, err)
	assert.Equal(t, dogs.Dog{ID: created.ID, Name: "Rex", Weight: 13}, updated)

	name := "Max"
	updated, err = s.Update(ctx, created.ID, dogs.Patch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, dogs.Dog{ID: created.ID, Name: "Max", Weight: 13}, updated)

	deleted, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, deleted)

	_, err = s.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, dogs.ErrNotFound)
	_, err = s.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, dogs.ErrNotFound)
	_, err = s.Update(ctx, created.ID, dogs.Patch{Name: &name})
	assert.ErrorIs(t, err, dogs.ErrNotFound)
}

func TestDogsStore_FindAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	var want []dogs.Dog
	for i := 0; i < 3; i++ {
		d, err := s.Create(ctx, dogs.NewDog{Name: fmt.Sprintf("dog-%d", i), Weight: float64(i + 1)})
		require.NoError(t, err)
		want = append(want, d)
	}

	all, err = s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, all)
}

func TestDogsStore_ClosedDBSurfacesError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.db.Close())

	_, err := s.FindAll(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, dogs.ErrNotFound)
}

func TestDogsStore_IDsAreMatchedExactly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	d, err := s.Create(ctx, dogs.NewDog{Name: "Luna", Weight: 8})
	require.NoError(t, err)

	_, err = s.FindByID(ctx, " "+d.ID)
	assert.ErrorIs(t, err, dogs.ErrNotFound)
	_, err = s.Delete(ctx, d.ID+" ")
	assert.ErrorIs(t, err, dogs.ErrNotFound)

	got, err := s.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}
