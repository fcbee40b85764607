package ports

import (
	"context"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, ownerID, productID string, patch domain.UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, ownerID, productID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
}
