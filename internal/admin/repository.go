package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrAdminNotFound = errors.New("admin not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM admins
		WHERE email = $1
	`

	var a Admin
	err := r.db.GetContext(ctx, &a, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *repository) Create(ctx context.Context, a *Admin) (*Admin, error) {
	query := `
		INSERT INTO admins (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, name, email, password_hash, created_at
	`

	var created Admin
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), a.Name, a.Email, a.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Already seeded.
			return r.FindByEmail(ctx, a.Email)
		}
		return nil, err
	}

	return &created, nil
}
