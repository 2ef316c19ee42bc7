package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cheertaboi/facility-pricing-service/internal/api/response"
	"github.com/Cheertaboi/facility-pricing-service/internal/models"
)

type CouponAdmin interface {
	Create(ctx context.Context, req models.CreateCouponRequest) (*models.Coupon, error)
	Get(ctx context.Context, code string) (*models.Coupon, error)
}

type CouponHandler struct {
	svc CouponAdmin
}

func NewCouponHandler(svc CouponAdmin) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// CreateCoupon handles POST /admin/coupons
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCouponRequest
	if err := decode(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}

	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, c)
}

// GetCoupon handles GET /admin/coupons/{code}
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}
