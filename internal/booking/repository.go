package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrDuplicateReference = errors.New("payment reference already recorded")
)

const uniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (id, space_id, name, email, phone, company_name, status, payment_status, amount)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', 'pending', $7)
		RETURNING id, space_id, name, email, phone, company_name, status, payment_status, amount, payment_reference, created_at, updated_at
	`

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		uuid.NewString(), b.SpaceID, b.Name, b.Email, b.Phone, b.CompanyName, b.Amount,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT id, space_id, name, email, phone, company_name, status, payment_status, amount, payment_reference, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) Confirm(ctx context.Context, id, reference string) (bool, error) {
	query := `
		UPDATE bookings
		SET status = 'confirmed', payment_status = 'completed', payment_reference = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, id, reference)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return false, ErrDuplicateReference
		}
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Booking, error) {
	query := `
		SELECT id, space_id, name, email, phone, company_name, status, payment_status, amount, payment_reference, created_at, updated_at
		FROM bookings
		ORDER BY created_at DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
