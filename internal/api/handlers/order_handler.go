package handlers

import (
	"context"
	"net/http"

	"github.com/Cheertaboi/facility-pricing-service/internal/api/response"
	"github.com/Cheertaboi/facility-pricing-service/internal/models"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderReceipt, error)
}

type OrderHandler struct {
	svc OrderPlacer
}

func NewOrderHandler(svc OrderPlacer) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// PlaceOrder handles POST /orders. The order key may come from the body or
// the Idempotency-Key header.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
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
	if req.OrderKey == "" {
		req.OrderKey = r.Header.Get(IdempotencyKeyHeader)
	}

	receipt, err := h.svc.PlaceOrder(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}

	status := http.StatusCreated
	if receipt.Replayed {
		status = http.StatusOK
	}
	response.JSON(w, status, receipt)
}
