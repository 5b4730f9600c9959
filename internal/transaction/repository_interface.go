package transaction

import "context"

type Repository interface {
	// Append records a settlement. A row already keyed by the same
	// reference is left untouched and no error is returned, so replaying a
	// verification is safe.
	Append(ctx context.Context, t *Transaction) error
	ListAll(ctx context.Context) ([]Transaction, error)
}
