package contact

import "context"

type Repository interface {
	Create(ctx context.Context, m *Message) (*Message, error)
	ListAll(ctx context.Context) ([]Message, error)
}
