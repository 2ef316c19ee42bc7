package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/facility-pricing-service/internal/api/response"
)

type BalanceTopper interface {
	TopUp(ctx context.Context, userID string, amount float64) (float64, error)
}

type UserHandler struct {
	svc BalanceTopper
}

func NewUserHandler(svc BalanceTopper) *UserHandler {
	return &UserHandler{svc: svc}
}

type TopUpRequest struct {
	Amount float64 `json:"amount"`
}

type BalanceResponse struct {
	UserID  string  `json:"userId"`
	Balance float64 `json:"balance"`
}

// TopUp handles POST /admin/users/{id}/balance
func (h *UserHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if err := decode(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	balance, err := h.svc.TopUp(r.Context(), id, req.Amount)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, BalanceResponse{UserID: id, Balance: balance})
}
