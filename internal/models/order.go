package models

import "time"

type OrderRequest struct {
	OrderKey    string      `json:"orderKey"`
	UserID      string      `json:"userId"`
	ServiceType ServiceType `json:"serviceType"`
	CouponCode  string      `json:"couponCode,omitempty"`
	Months      int         `json:"months,omitempty"`
	RoomType    RoomType    `json:"roomType,omitempty"`
	Amount      float64     `json:"amount,omitempty"`
	Items       []CartItem  `json:"items,omitempty"`
}

type Order struct {
	ID            string      `json:"id"`
	OrderKey      string      `json:"orderKey"`
	UserID        string      `json:"userId"`
	ServiceType   ServiceType `json:"serviceType"`
	BasePrice     float64     `json:"basePrice"`
	TotalDiscount float64     `json:"totalDiscount"`
	FinalPrice    float64     `json:"finalPrice"`
	Currency      string      `json:"currency"`
	CouponID      string      `json:"couponId,omitempty"`
	CouponCode    string      `json:"couponCode,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type OrderReceipt struct {
	Order    *Order       `json:"order"`
	Price    *PriceResult `json:"price,omitempty"`
	Balance  float64      `json:"balance"`
	Replayed bool         `json:"replayed"`
}
