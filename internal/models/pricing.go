package models

type ServiceType string

const (
	ServiceReadingRoom ServiceType = "readingRoom"
	ServiceHostel      ServiceType = "hostel"
	ServiceCanteen     ServiceType = "canteen"
)

type RoomType string

const (
	RoomAC    RoomType = "ac"
	RoomNonAC RoomType = "non-ac"
)

type DiscountKind string

const (
	DiscountAutomated DiscountKind = "automated"
	DiscountCoupon    DiscountKind = "coupon"
)

// PriceRequest asks for a reading-room or hostel price. Months defaults to 1.
type PriceRequest struct {
	UserID      string      `json:"userId"`
	ServiceType ServiceType `json:"serviceType"`
	CouponCode  string      `json:"couponCode,omitempty"`
	Months      int         `json:"months,omitempty"`
	RoomType    RoomType    `json:"roomType,omitempty"`
}

type Discount struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Amount float64      `json:"amount"`
	Type   DiscountKind `json:"type"`
	Code   string       `json:"code,omitempty"`
}

type PriceResult struct {
	BasePrice      float64    `json:"basePrice"`
	BasePriceLabel string     `json:"basePriceLabel"`
	Discounts      []Discount `json:"discounts"`
	TotalDiscount  float64    `json:"totalDiscount"`
	FinalPrice     float64    `json:"finalPrice"`
	Currency       string     `json:"currency"`
}

// AppliedCoupon returns the coupon entry of the breakdown, if any.
func (r *PriceResult) AppliedCoupon() (Discount, bool) {
	for _, d := range r.Discounts {
		if d.Type == DiscountCoupon {
			return d, true
		}
	}
	return Discount{}, false
}
