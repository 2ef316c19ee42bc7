package service

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Cheertaboi/facility-pricing-service/internal/metrics"
	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/pricing"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

// Repos required by services (interfaces so tests can mock them).
type UserReader interface {
	Get(ctx context.Context, id string) (*models.UserRecord, error)
}

type CouponFinder interface {
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
}

type PricingService struct {
	users   UserReader
	coupons CouponFinder
	calc    *pricing.Calculator
	now     func() time.Time
	tracer  trace.Tracer
}

func NewPricingService(users UserReader, coupons CouponFinder, calc *pricing.Calculator) *PricingService {
	return &PricingService{
		users:   users,
		coupons: coupons,
		calc:    calc,
		now:     time.Now,
		tracer:  otel.Tracer("pricing-service"),
	}
}

// WithClock replaces the time source used for coupon expiry checks.
func (s *PricingService) WithClock(now func() time.Time) *PricingService {
	s.now = now
	return s
}

// Calculate prices a reading-room or hostel request.
func (s *PricingService) Calculate(ctx context.Context, req models.PriceRequest) (*models.PriceResult, error) {
	ctx, span := s.tracer.Start(ctx, "PricingService.Calculate")
	defer span.End()
	span.SetAttributes(
		attribute.String("user.id", req.UserID),
		attribute.String("service.type", string(req.ServiceType)),
		attribute.String("coupon.code", req.CouponCode),
	)

	user, coupon, err := s.resolve(ctx, req.UserID, req.CouponCode)
	if err != nil {
		return nil, s.fail(ctx, span, string(req.ServiceType), err)
	}

	res, err := s.calc.Calculate(req, user, coupon, s.now())
	if err != nil {
		return nil, s.fail(ctx, span, string(req.ServiceType), err)
	}
	s.succeed(ctx, string(req.ServiceType), res)
	return res, nil
}

// QuoteCanteen prices a canteen order from its cart total.
func (s *PricingService) QuoteCanteen(ctx context.Context, req models.AmountRequest) (*models.PriceResult, error) {
	ctx, span := s.tracer.Start(ctx, "PricingService.QuoteCanteen")
	defer span.End()
	span.SetAttributes(
		attribute.String("user.id", req.UserID),
		attribute.String("coupon.code", req.CouponCode),
	)

	svc := string(models.ServiceCanteen)
	user, coupon, err := s.resolve(ctx, req.UserID, req.CouponCode)
	if err != nil {
		return nil, s.fail(ctx, span, svc, err)
	}

	res, err := s.calc.QuoteAmount(req, user, coupon, s.now())
	if err != nil {
		return nil, s.fail(ctx, span, svc, err)
	}
	s.succeed(ctx, svc, res)
	return res, nil
}

// resolve loads the user and coupon concurrently. Missing records come back
// as nil so the calculator decides which failure is reported first.
func (s *PricingService) resolve(ctx context.Context, userID, code string) (*models.UserRecord, *models.Coupon, error) {
	var (
		user   *models.UserRecord
		coupon *models.Coupon
	)

	g, gctx := errgroup.WithContext(ctx)
	if userID != "" {
		g.Go(func() error {
			var err error
			user, err = s.users.Get(gctx, userID)
			return err
		})
	}
	if code != "" {
		g.Go(func() error {
			var err error
			coupon, err = s.coupons.FindByCode(gctx, code)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return user, coupon, nil
}

func (s *PricingService) fail(ctx context.Context, span trace.Span, svc string, err error) error {
	kind := xerrors.KindOf(err)
	metrics.Quotes.WithLabelValues(svc, string(kind)).Inc()

	if kind == xerrors.KindInternal {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		zlog.Ctx(ctx).Error().Err(err).Str("service_type", svc).Msg("price calculation failed")
	} else {
		span.SetAttributes(attribute.String("pricing.rejected", string(kind)))
		zlog.Ctx(ctx).Info().Str("service_type", svc).Str("reason", err.Error()).Msg("price request rejected")
	}
	return err
}

func (s *PricingService) succeed(ctx context.Context, svc string, res *models.PriceResult) {
	metrics.Quotes.WithLabelValues(svc, "ok").Inc()
	zlog.Ctx(ctx).Debug().
		Str("service_type", svc).
		Float64("base_price", res.BasePrice).
		Float64("final_price", res.FinalPrice).
		Int("discounts", len(res.Discounts)).
		Msg("price calculated")
}
