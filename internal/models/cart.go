package models

type CartItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// AmountRequest prices a canteen order whose total the caller already knows.
// When Items are present and Amount is zero the total is taken from the items.
type AmountRequest struct {
	UserID     string     `json:"userId"`
	CouponCode string     `json:"couponCode,omitempty"`
	Amount     float64    `json:"amount"`
	Items      []CartItem `json:"items,omitempty"`
}
