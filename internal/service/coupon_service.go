package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/pricing"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

type CouponRepo interface {
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	Create(ctx context.Context, c *models.Coupon) error
}

type CouponService struct {
	repo CouponRepo
	now  func() time.Time
}

func NewCouponService(repo CouponRepo) *CouponService {
	return &CouponService{repo: repo, now: time.Now}
}

// Create registers a new coupon. Expiry dates are normalised to millisecond
// UTC timestamps so they compare correctly as strings.
func (s *CouponService) Create(ctx context.Context, req models.CreateCouponRequest) (*models.Coupon, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, xerrors.InvalidArgument("code is required")
	}

	switch req.Type {
	case models.DiscountPercentage:
		if req.Value > 100 {
			return nil, xerrors.InvalidArgument("percentage value must not exceed 100")
		}
	case models.DiscountFlat:
	default:
		return nil, xerrors.InvalidArgument("type must be percentage or flat")
	}
	if req.Value <= 0 {
		return nil, xerrors.InvalidArgument("value must be greater than zero")
	}
	if req.UsageLimit < 0 || req.MinAmount < 0 {
		return nil, xerrors.InvalidArgument("usageLimit and minAmount must not be negative")
	}

	expiry, err := normaliseExpiry(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	for _, svc := range req.ApplicableServices {
		switch svc {
		case models.ServiceReadingRoom, models.ServiceHostel, models.ServiceCanteen:
		default:
			return nil, xerrors.InvalidArgument(fmt.Sprintf("unknown service type %q", svc))
		}
	}

	now := s.now().UTC()
	c := &models.Coupon{
		ID:                 uuid.NewString(),
		Code:               code,
		Type:               req.Type,
		Value:              req.Value,
		ExpiryDate:         expiry,
		UsageLimit:         req.UsageLimit,
		ApplicableServices: req.ApplicableServices,
		MinAmount:          req.MinAmount,
		ShadowUserID:       req.ShadowUserID,
		Stackable:          req.Stackable,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	zlog.Ctx(ctx).Info().Str("coupon", c.Code).Str("coupon_id", c.ID).Msg("coupon created")
	return c, nil
}

// normaliseExpiry accepts an RFC 3339 timestamp or a bare date. A bare date
// stays valid through the last millisecond of that day in UTC.
func normaliseExpiry(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return pricing.ISOTimestamp(t), nil
	}
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return pricing.ISOTimestamp(d.Add(24*time.Hour - time.Millisecond)), nil
	}
	return "", xerrors.InvalidArgument("expiryDate must be an ISO-8601 date or timestamp")
}

// Get reads the coupon straight from the store so usedCount is current.
func (s *CouponService) Get(ctx context.Context, code string) (*models.Coupon, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, xerrors.NotFound("Coupon not found")
	}
	return c, nil
}
