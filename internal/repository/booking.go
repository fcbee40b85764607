package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, account_id, from_account, booking_date, booking_time, price,
		status, payment_status, gateway_order_id, gateway_payment_id, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, account_id, from_account, booking_date, booking_time,
				price, status, payment_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.To, b.From, b.Date, b.Time,
		b.Price, b.Status, b.PaymentStatus, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) ListByParty(ctx context.Context, partyID string) ([]*domain.Booking, error) {
	// Both sides of the deal see the booking: the owner it was filed against
	// and the tenant that requested it. Both columns are indexed.
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE from_account = $1 OR account_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by party: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Transition(
	ctx context.Context,
	ownerID, bookingID string,
	status domain.BookingStatus,
	payStatus domain.PaymentStatus,
	onlyPending bool,
) (*domain.Booking, error) {
	// Re-accepting an already-paid booking must not erase the settled payment.
	payExpr := `$4`
	if status == domain.BookingStatusAccepted {
		payExpr = `CASE WHEN payment_status = 'success' THEN payment_status ELSE $4 END`
	}

	query := `UPDATE bookings
			  SET status = $3, payment_status = ` + payExpr + `, updated_at = now()
			  WHERE id = $1 AND account_id = $2`
	if onlyPending {
		query += ` AND status = 'pending'`
	}
	query += ` RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, ownerID, status, payStatus)
	if err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}

	b, err := scanBooking(row)
	if errors.Is(err, domain.ErrBookingNotFound) && onlyPending {
		// Distinguish a missing booking from one the guard refused.
		if _, getErr := r.getByOwner(ctx, ownerID, bookingID); getErr == nil {
			return nil, domain.ErrBookingFinalized
		}
		return nil, domain.ErrBookingNotFound
	}

	return b, err
}

func (r *BookingRepository) SetGatewayOrder(ctx context.Context, bookingID, orderID string) error {
	query := `UPDATE bookings
			  SET gateway_order_id = $2, updated_at = now()
			  WHERE id = $1 AND status = 'accepted'`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, orderID)
	if err != nil {
		return fmt.Errorf("set gateway order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set gateway order rows affected: %w", err)
	}
	if rows == 0 {
		if _, getErr := r.GetByID(ctx, bookingID); getErr != nil {
			return getErr
		}
		return domain.ErrBookingNotAccepted
	}

	return nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, bookingID, paymentID string) (*domain.Booking, bool, error) {
	query := `UPDATE bookings
			  SET payment_status = $3, gateway_payment_id = $2, updated_at = now()
			  WHERE id = $1 AND status = 'accepted' AND payment_status = 'pending'
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, paymentID, domain.PaymentStatusSuccess)
	if err != nil {
		return nil, false, fmt.Errorf("mark booking paid: %w", err)
	}

	b, err := scanBooking(row)
	if err == nil {
		return b, true, nil
	}
	if !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, false, err
	}

	// The compare-and-set matched no row: absent, not yet accepted, or
	// already settled. A redelivered callback for the same payment is a
	// no-op, not an error.
	current, getErr := r.GetByID(ctx, bookingID)
	if getErr != nil {
		return nil, false, getErr
	}
	if current.PaymentStatus == domain.PaymentStatusSuccess && current.GatewayPaymentID == paymentID {
		return current, false, nil
	}
	if current.Status != domain.BookingStatusAccepted {
		return nil, false, domain.ErrBookingNotAccepted
	}

	return nil, false, domain.ErrBookingFinalized
}

func (r *BookingRepository) getByOwner(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1 AND account_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get booking by owner: %w", err)
	}

	return scanBooking(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		orderID   sql.NullString
		paymentID sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.To, &b.From, &b.Date, &b.Time, &b.Price,
		&b.Status, &b.PaymentStatus, &orderID, &paymentID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	b.GatewayOrderID = orderID.String
	b.GatewayPaymentID = paymentID.String

	return &b, nil
}
