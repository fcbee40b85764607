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

const productColumns = `id, account_id, name, src, location, price, availability, created_at, updated_at`

type ProductRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProductRepo(db *dbpg.DB) *ProductRepository {
	return &ProductRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, account_id, name, src, location, price, availability, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.OwnerID, p.Name, p.Src, p.Location, p.Price, p.Availability,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r *ProductRepository) Update(ctx context.Context, ownerID, productID string, patch domain.UpdateProductInput) (*domain.Product, error) {
	// Nil patch fields keep current values.
	query := `UPDATE products
			  SET name         = COALESCE($3, name),
			      src          = COALESCE($4, src),
			      location     = COALESCE($5, location),
			      price        = COALESCE($6, price),
			      availability = COALESCE($7, availability),
			      updated_at   = now()
			  WHERE id = $1 AND account_id = $2
			  RETURNING ` + productColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		productID, ownerID,
		patch.Name, patch.Src, patch.Location, patch.Price, patch.Availability,
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	p, err := scanProduct(row)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, ownerID, productID string) error {
	query := `DELETE FROM products WHERE id = $1 AND account_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, productID, ownerID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("product rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE account_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products by owner: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + `
			  FROM products
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]*domain.Product, error) {
	var res []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Src, &p.Location,
		&p.Price, &p.Availability, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}
