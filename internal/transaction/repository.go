package transaction

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

func (r *repository) Append(ctx context.Context, t *Transaction) error {
	// The unique index on reference makes settlement recording at-most-once;
	// a duplicate append is a no-op rather than an error.
	query := `
		INSERT INTO transactions (id, booking_id, reference, amount, status, gateway_data)
		VALUES ($1, $2, $3, $4, 'success', $5)
		ON CONFLICT (reference) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), t.BookingID, t.Reference, t.Amount, t.GatewayData,
	)
	return err
}

func (r *repository) ListAll(ctx context.Context) ([]Transaction, error) {
	query := `
		SELECT id, booking_id, reference, amount, status, gateway_data, created_at
		FROM transactions
		ORDER BY created_at DESC
	`

	var txs []Transaction
	err := r.db.SelectContext(ctx, &txs, query)
	if err != nil {
		return nil, err
	}

	return txs, nil
}
