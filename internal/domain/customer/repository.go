package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, customerID string) (*Customer, error)
	GetByWallet(ctx context.Context, walletAddress string) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
}
