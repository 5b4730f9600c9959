package space

import "context"

type Repository interface {
	Create(ctx context.Context, s *Space) (*Space, error)
	GetByID(ctx context.Context, id string) (*Space, error)
	Update(ctx context.Context, id string, s *Space) error
}
