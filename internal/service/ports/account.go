package ports

import (
	"context"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
