package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

// Calculator prices requests against a fixed RateTable. It holds no other
// state and never mutates the records it is given.
type Calculator struct {
	rates RateTable
}

func NewCalculator(rates RateTable) *Calculator {
	return &Calculator{rates: rates}
}

func (c *Calculator) Rates() RateTable {
	return c.rates
}

// Calculate prices a reading-room or hostel subscription.
//
// user and coupon are the records resolved for req.UserID and req.CouponCode;
// nil means the lookup found nothing. Any error aborts the whole computation,
// including automated discounts already evaluated.
func (c *Calculator) Calculate(req models.PriceRequest, user *models.UserRecord, coupon *models.Coupon, now time.Time) (*models.PriceResult, error) {
	if req.UserID == "" || req.ServiceType == "" {
		return nil, xerrors.InvalidArgument("userId and serviceType are required")
	}
	if req.Months < 0 {
		return nil, xerrors.InvalidArgument("months must be a positive integer")
	}
	months := req.Months
	if months == 0 {
		months = 1
	}
	if user == nil {
		return nil, xerrors.ErrUserNotFound
	}

	base, label, err := c.basePrice(req.ServiceType, req.RoomType, months)
	if err != nil {
		return nil, err
	}

	discounts := c.automatedDiscounts(req.ServiceType, months, base, user)

	return c.applyCoupon(req.UserID, req.ServiceType, req.CouponCode, base, label, discounts, coupon, now)
}

// QuoteAmount prices a canteen order from a caller-supplied total. Only the
// coupon stages run: no automated discount applies to canteen orders.
func (c *Calculator) QuoteAmount(req models.AmountRequest, user *models.UserRecord, coupon *models.Coupon, now time.Time) (*models.PriceResult, error) {
	if req.UserID == "" {
		return nil, xerrors.InvalidArgument("userId is required")
	}
	amount, err := CartTotal(req)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, xerrors.ErrUserNotFound
	}

	return c.applyCoupon(req.UserID, models.ServiceCanteen, req.CouponCode, amount, "Canteen order", nil, coupon, now)
}

// CartTotal resolves the base amount of a canteen request.
func CartTotal(req models.AmountRequest) (float64, error) {
	if req.Amount < 0 {
		return 0, xerrors.InvalidArgument("amount must not be negative")
	}
	if req.Amount > 0 || len(req.Items) == 0 {
		return req.Amount, nil
	}

	total := decimal.Zero
	for _, it := range req.Items {
		if it.Price < 0 || it.Qty < 0 {
			return 0, xerrors.InvalidArgument(fmt.Sprintf("invalid cart item %q", it.ID))
		}
		total = total.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	v, _ := total.Float64()
	return v, nil
}

func (c *Calculator) basePrice(svc models.ServiceType, room models.RoomType, months int) (float64, string, error) {
	m := decimal.NewFromInt(int64(months))

	switch svc {
	case models.ServiceReadingRoom:
		unit, kind := c.rates.ReadingRoom.NonAC, "Non-AC"
		if room == models.RoomAC {
			unit, kind = c.rates.ReadingRoom.AC, "AC"
		}
		base, _ := decimal.NewFromFloat(unit).Mul(m).Float64()
		return base, fmt.Sprintf("Reading Room (%s) - %d month(s)", kind, months), nil
	case models.ServiceHostel:
		base, _ := decimal.NewFromFloat(c.rates.Hostel).Mul(m).Float64()
		return base, fmt.Sprintf("Hostel Room - %d month(s)", months), nil
	default:
		return 0, "", xerrors.InvalidArgument("Unsupported service type")
	}
}

func (c *Calculator) automatedDiscounts(svc models.ServiceType, months int, base float64, user *models.UserRecord) []models.Discount {
	var discounts []models.Discount

	if months >= c.rates.Bulk.MinMonths {
		discounts = append(discounts, models.Discount{
			ID:     "bulk",
			Name:   fmt.Sprintf("Bulk discount (%d months)", months),
			Amount: percentOf(base, c.rates.Bulk.Percent),
			Type:   models.DiscountAutomated,
		})
	}

	// svc is a single value, so at most one of these holds.
	switch {
	case svc == models.ServiceHostel && user.HasActiveSeat():
		discounts = append(discounts, c.bundle("active reading room"))
	case svc == models.ServiceReadingRoom && user.HasActiveHostelRoom():
		discounts = append(discounts, c.bundle("active hostel room"))
	}

	return discounts
}

func (c *Calculator) bundle(reason string) models.Discount {
	return models.Discount{
		ID:     "bundle",
		Name:   fmt.Sprintf("Bundle discount (%s)", reason),
		Amount: c.rates.Bundle.Amount,
		Type:   models.DiscountAutomated,
	}
}

func (c *Calculator) applyCoupon(userID string, svc models.ServiceType, code string, base float64, label string,
	discounts []models.Discount, coupon *models.Coupon, now time.Time) (*models.PriceResult, error) {
	if code != "" {
		if coupon == nil {
			return nil, xerrors.ErrCouponNotFound
		}
		if v := ValidateCoupon(coupon, userID, svc, base, now); !v.Valid {
			return nil, xerrors.InvalidArgument(v.Reason)
		}

		if !coupon.Stackable && len(discounts) > 0 {
			discounts = discounts[:0]
		}
		discounts = append(discounts, models.Discount{
			ID:     coupon.ID,
			Name:   fmt.Sprintf("Coupon (%s)", coupon.Code),
			Amount: couponAmount(coupon, base),
			Type:   models.DiscountCoupon,
			Code:   coupon.Code,
		})
	}

	return c.totals(base, label, discounts), nil
}

func (c *Calculator) totals(base float64, label string, discounts []models.Discount) *models.PriceResult {
	amounts := make([]float64, len(discounts))
	for i, d := range discounts {
		amounts[i] = d.Amount
	}
	total := sum(amounts)

	final := decimal.NewFromFloat(base).Sub(total)
	if final.IsNegative() {
		final = decimal.Zero
	}

	if discounts == nil {
		discounts = []models.Discount{}
	}
	totalF, _ := total.Float64()
	finalF, _ := final.Float64()
	return &models.PriceResult{
		BasePrice:      base,
		BasePriceLabel: label,
		Discounts:      discounts,
		TotalDiscount:  totalF,
		FinalPrice:     finalF,
		Currency:       c.rates.Currency,
	}
}
