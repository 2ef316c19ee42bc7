package pricing

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Cheertaboi/facility-pricing-service/internal/models"
)

const (
	ReasonExpired       = "Coupon expired"
	ReasonUsageLimit    = "Coupon usage limit reached"
	ReasonNotApplicable = "Coupon not applicable for this service"
	ReasonNotYourCoupon = "This coupon is not valid for your account"
)

// isoLayout matches the millisecond UTC timestamps coupons store as expiry dates.
const isoLayout = "2006-01-02T15:04:05.000Z"

func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func minimumSpendReason(min float64) string {
	return fmt.Sprintf("Minimum spend of %s required", strconv.FormatFloat(min, 'f', -1, 64))
}

// ValidateCoupon runs every check in a fixed order without stopping early.
// Each failing check overwrites the reason, so the last failure is reported.
func ValidateCoupon(c *models.Coupon, userID string, svc models.ServiceType, basePrice float64, now time.Time) models.CouponValidation {
	reason := ""

	// Expiry dates are compared as strings; both sides are ISO-8601 UTC.
	if c.ExpiryDate != "" && c.ExpiryDate < ISOTimestamp(now) {
		reason = ReasonExpired
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		reason = ReasonUsageLimit
	}
	if !c.AppliesTo(svc) {
		reason = ReasonNotApplicable
	}
	if c.MinAmount > 0 && basePrice < c.MinAmount {
		reason = minimumSpendReason(c.MinAmount)
	}
	if c.ShadowUserID != "" && c.ShadowUserID != userID {
		reason = ReasonNotYourCoupon
	}

	return models.CouponValidation{Valid: reason == "", Reason: reason}
}

func couponAmount(c *models.Coupon, basePrice float64) float64 {
	if c.Type == models.DiscountPercentage {
		return percentOf(basePrice, c.Value)
	}
	return c.Value
}
