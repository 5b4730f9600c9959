package admin

import "context"

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	Create(ctx context.Context, a *Admin) (*Admin, error)
}
