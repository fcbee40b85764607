package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type AccountService struct {
	repo      ports.AccountRepo
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAccountService(repo ports.AccountRepo, jwtSecret string, tokenTTL time.Duration) *AccountService {
	return &AccountService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *AccountService) SignUp(ctx context.Context, in domain.SignUpInput) (*domain.Account, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	account, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, fmt.Errorf("get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("compare password: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  account.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, account, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.GetByID(ctx, id)
}
