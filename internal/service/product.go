package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports"
	"github.com/google/uuid"
)

type ProductService struct {
	repo        ports.ProductRepo
	accountRepo ports.AccountRepo
}

func NewProductService(repo ports.ProductRepo, accountRepo ports.AccountRepo) *ProductService {
	return &ProductService{
		repo:        repo,
		accountRepo: accountRepo,
	}
}

func (s *ProductService) Add(ctx context.Context, ownerID string, in domain.CreateProductInput) (*domain.Product, error) {
	if _, err := s.accountRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         in.Name,
		Src:          in.Src,
		Location:     in.Location,
		Price:        in.Price,
		Availability: in.Availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, ownerID, productID string, patch domain.UpdateProductInput) (*domain.Product, error) {
	if _, err := s.accountRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}

	product, err := s.repo.Update(ctx, ownerID, productID, patch)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

// Delete removes the product and returns the owner's remaining products.
func (s *ProductService) Delete(ctx context.Context, ownerID, productID string) ([]*domain.Product, error) {
	if _, err := s.accountRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	if err := s.repo.Delete(ctx, ownerID, productID); err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}

	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ProductService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error) {
	if _, err := s.accountRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ProductService) ListAll(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.ListAll(ctx)
}
