package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"dogs-api/internal/domain/dogs"

	"github.com/google/uuid"
)

type DogsStore struct {
	db *sql.DB
}

func NewDogsStore(db *sql.DB) *DogsStore {
	return &DogsStore{db: db}
}

// FindAll ordena por rowid: orden de inserción.
func (s *DogsStore) FindAll(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, weight FROM dogs ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		var d dogs.Dog
		if err := rows.Scan(&d.ID, &d.Name, &d.Weight); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *DogsStore) FindByID(ctx context.Context, id string) (dogs.Dog, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, weight FROM dogs WHERE id = ?`,
		id,
	)
	return scanDog(row)
}

func (s *DogsStore) Create(ctx context.Context, in dogs.NewDog) (dogs.Dog, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO dogs (id, name, weight) VALUES (?, ?, ?) RETURNING id, name, weight`,
		uuid.NewString(), in.Name, in.Weight,
	)
	return scanDog(row)
}

func (s *DogsStore) Update(ctx context.Context, id string, p dogs.Patch) (dogs.Dog, error) {
	var name sql.NullString
	if p.Name != nil {
		name = sql.NullString{String: *p.Name, Valid: true}
	}
	var weight sql.NullFloat64
	if p.Weight != nil {
		weight = sql.NullFloat64{Float64: *p.Weight, Valid: true}
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE dogs
		SET name = COALESCE(?, name), weight = COALESCE(?, weight)
		WHERE id = ?
		RETURNING id, name, weight
	`, name, weight, id)
	return scanDog(row)
}

func (s *DogsStore) Delete(ctx context.Context, id string) (dogs.Dog, error) {
	row := s.db.QueryRowContext(ctx,
		`DELETE FROM dogs WHERE id = ? RETURNING id, name, weight`,
		id,
	)
	return scanDog(row)
}

func scanDog(row *sql.Row) (dogs.Dog, error) {
	var d dogs.Dog
	if err := row.Scan(&d.ID, &d.Name, &d.Weight); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}
