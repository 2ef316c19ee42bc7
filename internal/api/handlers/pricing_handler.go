package handlers

import (
	"context"
	"net/http"

	"github.com/Cheertaboi/facility-pricing-service/internal/api/response"
	"github.com/Cheertaboi/facility-pricing-service/internal/models"
)

type Pricer interface {
	Calculate(ctx context.Context, req models.PriceRequest) (*models.PriceResult, error)
	QuoteCanteen(ctx context.Context, req models.AmountRequest) (*models.PriceResult, error)
}

type PricingHandler struct {
	svc Pricer
}

func NewPricingHandler(svc Pricer) *PricingHandler {
	return &PricingHandler{svc: svc}
}

// Calculate handles POST /payments/calculate
func (h *PricingHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.PriceRequest
	if err := decode(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	uid, err := actingUser(r, req.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	req.UserID = uid

	res, err := h.svc.Calculate(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Price(w, res)
}

// QuoteCanteen handles POST /canteen/quote
func (h *PricingHandler) QuoteCanteen(w http.ResponseWriter, r *http.Request) {
	var req models.AmountRequest
	if err := decode(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	uid, err := actingUser(r, req.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	req.UserID = uid

	res, err := h.svc.QuoteCanteen(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Price(w, res)
}
