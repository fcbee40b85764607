package service

import (
	"context"
	"testing"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func newAccountService(t *testing.T) (*AccountService, *mocks.MockAccountRepo) {
	t.Helper()
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, testJWTSecret, 24*time.Hour)
	return svc, repo
}

func TestAccountService_SignUp_Success(t *testing.T) {
	svc, repo := newAccountService(t)

	var stored *domain.Account
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, account *domain.Account) {
			stored = account
		}).
		Return(nil)

	account, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Name:     "Tim",
		Email:    "Tim@Example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "tim@example.com", account.Email)
	assert.NotEmpty(t, account.ID)
	// The stored hash matches the original password and is not the password itself.
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestAccountService_SignUp_Validation(t *testing.T) {
	svc, _ := newAccountService(t)

	_, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Name:  "Tim",
		Email: "tim@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_SignUp_EmailTaken(t *testing.T) {
	svc, repo := newAccountService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Name:     "Tim",
		Email:    "tim@example.com",
		Password: "hunter22",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAccountService_Login_Success(t *testing.T) {
	svc, repo := newAccountService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "tim@example.com").Return(&domain.Account{
		ID:           "t1",
		Email:        "tim@example.com",
		PasswordHash: string(hash),
	}, nil)

	token, account, err := svc.Login(context.Background(), "Tim@Example.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, "t1", account.ID)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "t1", claims["id"])
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc, repo := newAccountService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "tim@example.com").Return(&domain.Account{
		ID:           "t1",
		PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(context.Background(), "tim@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	svc, repo := newAccountService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, domain.ErrAccountNotFound)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
