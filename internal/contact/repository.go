package contact

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Message) (*Message, error) {
	query := `
		INSERT INTO messages (id, name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, $5, 'new')
		RETURNING id, name, email, phone, message, status, created_at
	`

	var created Message
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), m.Name, m.Email, m.Phone, m.Message,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Message, error) {
	query := `
		SELECT id, name, email, phone, message, status, created_at
		FROM messages
		ORDER BY created_at DESC
	`

	var messages []Message
	err := r.db.SelectContext(ctx, &messages, query)
	if err != nil {
		return nil, err
	}

	return messages, nil
}
