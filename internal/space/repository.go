package space

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrSpaceNotFound = errors.New("space not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Space) (*Space, error) {
	query := `
		INSERT INTO spaces (id, name, type, floor, size, price, available, features, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, name, type, floor, size, price, available, features, description, image_url, created_at, updated_at
	`

	var created Space
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), s.Name, s.Type, s.Floor, s.Size, s.Price,
		s.Available, pq.StringArray(s.Features), s.Description, s.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Space, error) {
	query := `
		SELECT id, name, type, floor, size, price, available, features, description, image_url, created_at, updated_at
		FROM spaces
		WHERE id = $1
	`

	var s Space
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *repository) Update(ctx context.Context, id string, s *Space) error {
	query := `
		UPDATE spaces
		SET name = $2, type = $3, floor = $4, size = $5, price = $6,
		    available = $7, features = $8, description = $9, image_url = $10,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id,
		s.Name, s.Type, s.Floor, s.Size, s.Price,
		s.Available, pq.StringArray(s.Features), s.Description, s.ImageURL,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}
