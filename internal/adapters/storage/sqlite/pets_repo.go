package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pet-registry/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, age, description, image,
			created_at, updated_at
		FROM pets
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		var createdAt, updatedAt string
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Age,
			&p.Description,
			&p.Image,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Insert(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, age, description, image,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?)
	`,
		p.ID,
		p.Name,
		p.Age,
		p.Description,
		p.Image,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	return err
}

func (r *PetsRepo) Replace(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = ?, age = ?, description = ?, image = ?, updated_at = ?
		WHERE id = ?
	`,
		p.Name,
		p.Age,
		p.Description,
		p.Image,
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// Timestamps como TEXT RFC3339Nano en UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: bad timestamp %q: %w", s, err)
	}
	return t, nil
}
