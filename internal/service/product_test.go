package service

import (
	"context"
	"testing"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) (*ProductService, *mocks.MockProductRepo, *mocks.MockAccountRepo) {
	t.Helper()
	repo := mocks.NewMockProductRepo(t)
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewProductService(repo, accountRepo)
	return svc, repo, accountRepo
}

func TestProductService_Add_Success(t *testing.T) {
	svc, repo, accountRepo := newProductService(t)

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Account{ID: "o1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	product, err := svc.Add(context.Background(), "o1", domain.CreateProductInput{
		Name:         "Studio flat",
		Location:     "Pune",
		Price:        500,
		Availability: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "o1", product.OwnerID)
	assert.NotEmpty(t, product.ID)
}

func TestProductService_Add_Validation(t *testing.T) {
	svc, _, accountRepo := newProductService(t)

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Account{ID: "o1"}, nil)

	_, err := svc.Add(context.Background(), "o1", domain.CreateProductInput{Price: 100})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductService_Add_OwnerNotFound(t *testing.T) {
	svc, _, accountRepo := newProductService(t)

	accountRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrAccountNotFound)

	_, err := svc.Add(context.Background(), "missing", domain.CreateProductInput{Name: "Flat"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestProductService_Update_Patch(t *testing.T) {
	svc, repo, accountRepo := newProductService(t)

	newPrice := 750.0
	patch := domain.UpdateProductInput{Price: &newPrice}

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Account{ID: "o1"}, nil)
	repo.EXPECT().Update(mock.Anything, "o1", "p1", patch).Return(&domain.Product{
		ID:      "p1",
		OwnerID: "o1",
		Price:   newPrice,
	}, nil)

	product, err := svc.Update(context.Background(), "o1", "p1", patch)

	require.NoError(t, err)
	assert.Equal(t, newPrice, product.Price)
}

func TestProductService_Update_NegativePrice(t *testing.T) {
	svc, _, accountRepo := newProductService(t)

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Account{ID: "o1"}, nil)

	bad := -1.0
	_, err := svc.Update(context.Background(), "o1", "p1", domain.UpdateProductInput{Price: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductService_Delete_ReturnsRemaining(t *testing.T) {
	svc, repo, accountRepo := newProductService(t)

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Account{ID: "o1"}, nil)
	repo.EXPECT().Delete(mock.Anything, "o1", "p1").Return(nil)
	repo.EXPECT().ListByOwner(mock.Anything, "o1").Return([]*domain.Product{{ID: "p2", OwnerID: "o1"}}, nil)

	remaining, err := svc.Delete(context.Background(), "o1", "p1")

	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "p2", remaining[0].ID)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	svc, repo, accountRepo := newProductService(t)

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Account{ID: "o1"}, nil)
	repo.EXPECT().Delete(mock.Anything, "o1", "missing").Return(domain.ErrProductNotFound)

	_, err := svc.Delete(context.Background(), "o1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
