package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bird-service/internal/domain/birds"
)

type BirdsRepo struct {
	db *sql.DB
}

func NewBirdsRepo(db *sql.DB) *BirdsRepo {
	return &BirdsRepo{db: db}
}

var _ birds.Repository = (*BirdsRepo)(nil)

func (r *BirdsRepo) Save(ctx context.Context, b birds.Bird) error {
	rec := b.Record()
	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("sqlite: bird id required")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO birds (id, species, size)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET species = excluded.species,
			size = excluded.size
	`, rec.ID, rec.Species, rec.Size)
	if err != nil {
		return fmt.Errorf("sqlite: save bird: %w", err)
	}
	return nil
}

func (r *BirdsRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	if id == "" {
		return birds.Bird{}, birds.ErrNotFound
	}

	var rec birds.Record
	err := r.db.QueryRowContext(ctx, `
		SELECT id, species, size FROM birds WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Species, &rec.Size)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return birds.Bird{}, birds.ErrNotFound
		}
		return birds.Bird{}, fmt.Errorf("sqlite: get bird: %w", err)
	}

	return birds.FromRecord(rec), nil
}

func (r *BirdsRepo) List(ctx context.Context) ([]birds.Bird, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, species, size FROM birds ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list birds: %w", err)
	}
	defer rows.Close()

	out := make([]birds.Bird, 0)
	for rows.Next() {
		var rec birds.Record
		if err := rows.Scan(&rec.ID, &rec.Species, &rec.Size); err != nil {
			return nil, fmt.Errorf("sqlite: scan bird: %w", err)
		}
		out = append(out, birds.FromRecord(rec))
	}

	return out, rows.Err()
}

func (r *BirdsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM birds WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete bird: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: delete bird: %w", err)
	}
	if n == 0 {
		return birds.ErrNotFound
	}
	return nil
}
