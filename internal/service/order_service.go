package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Cheertaboi/facility-pricing-service/internal/metrics"
	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

const serializationFailure = "40001"

var (
	ErrInsufficientBalance = xerrors.FailedPrecondition("Insufficient balance")
	ErrCouponExhausted     = xerrors.FailedPrecondition("Coupon usage limit reached")
	ErrOrderConflict       = xerrors.FailedPrecondition("Order conflicted with a concurrent update, please retry")
)

type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type Quoter interface {
	Calculate(ctx context.Context, req models.PriceRequest) (*models.PriceResult, error)
	QuoteCanteen(ctx context.Context, req models.AmountRequest) (*models.PriceResult, error)
}

type BalanceStore interface {
	LockBalance(ctx context.Context, tx *sql.Tx, userID string) (float64, error)
	Debit(ctx context.Context, tx *sql.Tx, userID string, amount float64) (float64, error)
}

type UsageRepo interface {
	Reserve(ctx context.Context, tx *sql.Tx, couponID string) (bool, error)
	RecordRedemption(ctx context.Context, tx *sql.Tx, couponID, userID, orderID string) error
}

type OrderStore interface {
	FindByKey(ctx context.Context, tx *sql.Tx, key string) (*models.Order, error)
	Create(ctx context.Context, tx *sql.Tx, o *models.Order) error
}

type CouponInvalidator interface {
	Invalidate(ctx context.Context, code string) error
}

type OrderService struct {
	db       TxBeginner // used for transactions
	quotes   Quoter
	balances BalanceStore
	usage    UsageRepo
	orders   OrderStore
	cache    CouponInvalidator
	now      func() time.Time
	tracer   trace.Tracer
}

func NewOrderService(db TxBeginner, quotes Quoter, balances BalanceStore, usage UsageRepo, orders OrderStore, cache CouponInvalidator) *OrderService {
	return &OrderService{
		db:       db,
		quotes:   quotes,
		balances: balances,
		usage:    usage,
		orders:   orders,
		cache:    cache,
		now:      time.Now,
		tracer:   otel.Tracer("order-service"),
	}
}

// PlaceOrder prices req and charges the user for it in one serializable
// transaction. A repeated OrderKey returns the order placed the first time.
func (s *OrderService) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder")
	defer span.End()

	if req.OrderKey == "" {
		req.OrderKey = uuid.NewString()
	}
	span.SetAttributes(
		attribute.String("order.key", req.OrderKey),
		attribute.String("user.id", req.UserID),
		attribute.String("service.type", string(req.ServiceType)),
	)
	log := zlog.Ctx(ctx).With().Str("order_key", req.OrderKey).Str("user_id", req.UserID).Logger()

	receipt, err := s.placeOrder(ctx, req)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == serializationFailure {
			err = ErrOrderConflict
		}
		kind := xerrors.KindOf(err)
		metrics.Orders.WithLabelValues(string(kind)).Inc()
		if kind == xerrors.KindInternal {
			span.RecordError(err)
			log.Error().Err(err).Msg("order placement failed")
		} else {
			log.Info().Str("reason", err.Error()).Msg("order rejected")
		}
		return nil, err
	}

	if receipt.Replayed {
		metrics.Orders.WithLabelValues("replayed").Inc()
		log.Info().Str("order_id", receipt.Order.ID).Msg("order replayed")
		return receipt, nil
	}

	metrics.Orders.WithLabelValues("ok").Inc()
	if receipt.Order.CouponCode != "" {
		metrics.CouponRedemptions.Inc()
		// usedCount changed, so the cached copy is stale.
		if err := s.cache.Invalidate(ctx, receipt.Order.CouponCode); err != nil {
			log.Warn().Err(err).Str("coupon", receipt.Order.CouponCode).Msg("coupon cache invalidation failed")
		}
	}
	log.Info().
		Str("order_id", receipt.Order.ID).
		Float64("final_price", receipt.Order.FinalPrice).
		Float64("balance", receipt.Balance).
		Msg("order placed")
	return receipt, nil
}

func (s *OrderService) placeOrder(ctx context.Context, req models.OrderRequest) (*models.OrderReceipt, error) {
	// Quote before taking a connection for the transaction: the quote reads
	// through the pool. Contended state is re-checked under lock below.
	price, quoteErr := s.quote(ctx, req)

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	existing, err := s.orders.FindByKey(ctx, tx, req.OrderKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.UserID != req.UserID {
			return nil, xerrors.InvalidArgument("orderKey already used by another user")
		}
		balance, err := s.balances.LockBalance(ctx, tx, existing.UserID)
		if err != nil {
			return nil, err
		}
		return &models.OrderReceipt{Order: existing, Balance: balance, Replayed: true}, nil
	}

	if quoteErr != nil {
		return nil, quoteErr
	}

	balance, err := s.balances.LockBalance(ctx, tx, req.UserID)
	if err != nil {
		return nil, err
	}
	if decimal.NewFromFloat(balance).LessThan(decimal.NewFromFloat(price.FinalPrice)) {
		return nil, ErrInsufficientBalance
	}

	order := &models.Order{
		ID:            uuid.NewString(),
		OrderKey:      req.OrderKey,
		UserID:        req.UserID,
		ServiceType:   req.ServiceType,
		BasePrice:     price.BasePrice,
		TotalDiscount: price.TotalDiscount,
		FinalPrice:    price.FinalPrice,
		Currency:      price.Currency,
		CreatedAt:     s.now().UTC(),
	}

	if d, ok := price.AppliedCoupon(); ok {
		reserved, err := s.usage.Reserve(ctx, tx, d.ID)
		if err != nil {
			return nil, err
		}
		if !reserved {
			return nil, ErrCouponExhausted
		}
		order.CouponID, order.CouponCode = d.ID, d.Code
	}

	newBalance, err := s.balances.Debit(ctx, tx, req.UserID, price.FinalPrice)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, tx, order); err != nil {
		return nil, err
	}
	if order.CouponID != "" {
		if err := s.usage.RecordRedemption(ctx, tx, order.CouponID, order.UserID, order.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "tx commit")
	}
	committed = true

	return &models.OrderReceipt{Order: order, Price: price, Balance: newBalance}, nil
}

func (s *OrderService) quote(ctx context.Context, req models.OrderRequest) (*models.PriceResult, error) {
	if req.ServiceType == models.ServiceCanteen {
		return s.quotes.QuoteCanteen(ctx, models.AmountRequest{
			UserID:     req.UserID,
			CouponCode: req.CouponCode,
			Amount:     req.Amount,
			Items:      req.Items,
		})
	}
	return s.quotes.Calculate(ctx, models.PriceRequest{
		UserID:      req.UserID,
		ServiceType: req.ServiceType,
		CouponCode:  req.CouponCode,
		Months:      req.Months,
		RoomType:    req.RoomType,
	})
}
