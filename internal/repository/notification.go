package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NotificationRepository) Append(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, account_id, title, message, type, is_read, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		n.ID, n.AccountID, n.Title, n.Message, n.Type, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

func (r *NotificationRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Notification, error) {
	query := `SELECT id, account_id, title, message, type, is_read, created_at
			  FROM notifications
			  WHERE account_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err = rows.Scan(&n.ID, &n.AccountID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		res = append(res, &n)
	}

	return res, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, accountID, notificationID string) error {
	query := `UPDATE notifications
			  SET is_read = true
			  WHERE id = $1 AND account_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, notificationID, accountID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("notification rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}
