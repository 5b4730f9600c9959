package booking

import "context"

type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	// Confirm transitions a booking from pending to confirmed and stamps the
	// payment reference. The update is conditional on the current status, so
	// of two racing calls exactly one observes confirmed=true.
	Confirm(ctx context.Context, id, reference string) (bool, error)
	ListAll(ctx context.Context) ([]Booking, error)
}
