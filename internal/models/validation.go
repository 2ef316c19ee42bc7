package models

// CouponValidation is the outcome of running every coupon check.
// Reason holds the message of the last check that failed.
type CouponValidation struct {
	Valid  bool
	Reason string
}
