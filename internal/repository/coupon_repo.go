package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

const uniqueViolation = "23505"

type CouponRepo struct {
	db *sql.DB
}

func NewCouponRepo(db *sql.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

const couponColumns = `
	id, code, discount_type, discount_value, COALESCE(expiry_date, ''),
	usage_limit, used_count, applicable_services, min_amount,
	COALESCE(shadow_user_id, ''), stackable, created_at, updated_at`

// FindByCode returns nil, nil when no coupon has this exact code.
func (r *CouponRepo) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	query := `SELECT` + couponColumns + `
		FROM coupons
		WHERE code = $1
		ORDER BY created_at
		LIMIT 1`

	c, err := scanCoupon(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "find coupon %q", code)
	}
	return c, nil
}

func (r *CouponRepo) Create(ctx context.Context, c *models.Coupon) error {
	query := `
		INSERT INTO coupons
		(id, code, discount_type, discount_value, expiry_date, usage_limit, used_count,
		 applicable_services, min_amount, shadow_user_id, stackable, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NULLIF($5,''),$6,0,$7,$8,NULLIF($9,''),$10,$11,$11)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Code,
		c.Type,
		c.Value,
		c.ExpiryDate,
		c.UsageLimit,
		pq.Array(serviceStrings(c.ApplicableServices)),
		c.MinAmount,
		c.ShadowUserID,
		c.Stackable,
		c.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return xerrors.InvalidArgument("Coupon code already exists")
		}
		return errors.Wrap(err, "insert coupon")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (*models.Coupon, error) {
	var c models.Coupon
	var services []string

	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Type,
		&c.Value,
		&c.ExpiryDate,
		&c.UsageLimit,
		&c.UsedCount,
		pq.Array(&services),
		&c.MinAmount,
		&c.ShadowUserID,
		&c.Stackable,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, s := range services {
		c.ApplicableServices = append(c.ApplicableServices, models.ServiceType(s))
	}
	return &c, nil
}

func serviceStrings(services []models.ServiceType) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, string(s))
	}
	return out
}
