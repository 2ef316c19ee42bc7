package models

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// Coupon is a registry entry matched exactly against a caller's coupon code.
// Zero values of UsageLimit, MinAmount, ShadowUserID and ExpiryDate mean "no restriction".
type Coupon struct {
	ID                 string        `json:"id"`
	Code               string        `json:"code"`
	Type               DiscountType  `json:"type"`
	Value              float64       `json:"value"`
	ExpiryDate         string        `json:"expiryDate,omitempty"` // ISO-8601 UTC
	UsageLimit         int           `json:"usageLimit,omitempty"`
	UsedCount          int           `json:"usedCount"`
	ApplicableServices []ServiceType `json:"applicableServices,omitempty"`
	MinAmount          float64       `json:"minAmount,omitempty"`
	ShadowUserID       string        `json:"shadowUserId,omitempty"`
	Stackable          bool          `json:"stackable"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

func (c *Coupon) AppliesTo(s ServiceType) bool {
	if len(c.ApplicableServices) == 0 {
		return true
	}
	for _, svc := range c.ApplicableServices {
		if svc == s {
			return true
		}
	}
	return false
}

type CreateCouponRequest struct {
	Code               string        `json:"code"`
	Type               DiscountType  `json:"type"`
	Value              float64       `json:"value"`
	ExpiryDate         string        `json:"expiryDate"`
	UsageLimit         int           `json:"usageLimit"`
	ApplicableServices []ServiceType `json:"applicableServices"`
	MinAmount          float64       `json:"minAmount"`
	ShadowUserID       string        `json:"shadowUserId"`
	Stackable          bool          `json:"stackable"`
}
