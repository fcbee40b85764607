package service

import (
	"context"
	"fmt"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports"
)

type NotificationService struct {
	repo        ports.NotificationRepo
	accountRepo ports.AccountRepo
}

func NewNotificationService(repo ports.NotificationRepo, accountRepo ports.AccountRepo) *NotificationService {
	return &NotificationService{
		repo:        repo,
		accountRepo: accountRepo,
	}
}

func (s *NotificationService) List(ctx context.Context, accountID string) ([]*domain.Notification, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}

	return s.repo.ListByAccount(ctx, accountID)
}

func (s *NotificationService) MarkRead(ctx context.Context, accountID, notificationID string) error {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return fmt.Errorf("check account: %w", err)
	}

	if err := s.repo.MarkRead(ctx, accountID, notificationID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	return nil
}
