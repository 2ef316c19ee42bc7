package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
)

type UsageRepo struct {
	db *sql.DB
}

func NewUsageRepo(db *sql.DB) *UsageRepo {
	return &UsageRepo{db: db}
}

// Reserve increments used_count inside tx unless the coupon is exhausted.
// It reports false when the limit was already reached at commit time.
func (r *UsageRepo) Reserve(ctx context.Context, tx *sql.Tx, couponID string) (bool, error) {
	query := `
		UPDATE coupons
		SET used_count = used_count + 1,
		    updated_at = $2
		WHERE id = $1
		  AND (usage_limit = 0 OR used_count < usage_limit)`

	res, err := tx.ExecContext(ctx, query, couponID, time.Now().UTC())
	if err != nil {
		return false, errors.Wrapf(err, "reserve coupon %s", couponID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "reserve coupon rows affected")
	}
	return n == 1, nil
}

// RecordRedemption links a reserved coupon to the order that consumed it.
func (r *UsageRepo) RecordRedemption(ctx context.Context, tx *sql.Tx, couponID, userID, orderID string) error {
	query := `
		INSERT INTO coupon_redemptions (coupon_id, user_id, order_id, redeemed_at)
		VALUES ($1, $2, $3, NOW())`

	if _, err := tx.ExecContext(ctx, query, couponID, userID, orderID); err != nil {
		return errors.Wrapf(err, "record redemption of coupon %s", couponID)
	}
	return nil
}
