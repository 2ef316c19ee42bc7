package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/Cheertaboi/facility-pricing-service/internal/models"
)

type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// FindByKey returns nil, nil when no order was placed under key.
func (r *OrderRepo) FindByKey(ctx context.Context, tx *sql.Tx, key string) (*models.Order, error) {
	query := `
		SELECT id, order_key, user_id, service_type, base_price, total_discount, final_price,
		       currency, COALESCE(coupon_id, ''), COALESCE(coupon_code, ''), created_at
		FROM orders
		WHERE order_key = $1`

	var o models.Order
	err := tx.QueryRowContext(ctx, query, key).Scan(
		&o.ID,
		&o.OrderKey,
		&o.UserID,
		&o.ServiceType,
		&o.BasePrice,
		&o.TotalDiscount,
		&o.FinalPrice,
		&o.Currency,
		&o.CouponID,
		&o.CouponCode,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "find order %s", key)
	}
	return &o, nil
}

func (r *OrderRepo) Create(ctx context.Context, tx *sql.Tx, o *models.Order) error {
	query := `
		INSERT INTO orders
		(id, order_key, user_id, service_type, base_price, total_discount, final_price,
		 currency, coupon_id, coupon_code, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NULLIF($9,''),NULLIF($10,''),$11)`

	_, err := tx.ExecContext(ctx, query,
		o.ID,
		o.OrderKey,
		o.UserID,
		o.ServiceType,
		o.BasePrice,
		o.TotalDiscount,
		o.FinalPrice,
		o.Currency,
		o.CouponID,
		o.CouponCode,
		o.CreatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "insert order %s", o.ID)
	}
	return nil
}
