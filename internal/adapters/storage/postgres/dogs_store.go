package postgres

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

func (s *DogsStore) FindAll(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, weight
		FROM dogs
		ORDER BY seq ASC
	`)
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
	if id == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, weight
		FROM dogs
		WHERE id = $1
	`, id)
	return scanDog(row)
}

func (s *DogsStore) Create(ctx context.Context, in dogs.NewDog) (dogs.Dog, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO dogs (id, name, weight)
		VALUES ($1, $2, $3)
		RETURNING id, name, weight
	`, uuid.NewString(), in.Name, in.Weight)
	return scanDog(row)
}

// Update pisa solo las columnas presentes en el patch (NULL => COALESCE deja el valor actual).
func (s *DogsStore) Update(ctx context.Context, id string, p dogs.Patch) (dogs.Dog, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE dogs
		SET
			name = COALESCE($2, name),
			weight = COALESCE($3, weight)
		WHERE id = $1
		RETURNING id, name, weight
	`, id, toNullString(p.Name), toNullFloat(p.Weight))
	return scanDog(row)
}

func (s *DogsStore) Delete(ctx context.Context, id string) (dogs.Dog, error) {
	row := s.db.QueryRowContext(ctx, `
		DELETE FROM dogs
		WHERE id = $1
		RETURNING id, name, weight
	`, id)
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

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
