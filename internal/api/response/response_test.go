package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/facility-pricing-service/internal/api/response"
	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

func TestError_MapsKindToStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
		msg    string
	}{
		{xerrors.Unauthenticated("Missing bearer token"), http.StatusUnauthorized, "unauthenticated", "Missing bearer token"},
		{xerrors.PermissionDenied("Admin role required"), http.StatusForbidden, "permission-denied", "Admin role required"},
		{xerrors.InvalidArgument("Coupon expired"), http.StatusBadRequest, "invalid-argument", "Coupon expired"},
		{xerrors.ErrUserNotFound, http.StatusNotFound, "not-found", "User not found"},
		{xerrors.FailedPrecondition("Insufficient balance"), http.StatusConflict, "failed-precondition", "Insufficient balance"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "internal", "internal error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		response.Error(rec, tc.err)

		assert.Equal(t, tc.status, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, tc.code, errBody["code"])
		assert.Equal(t, tc.msg, errBody["message"])
	}
}

func TestPrice_FlattensBreakdown(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Price(rec, &models.PriceResult{
		BasePrice: 3500, BasePriceLabel: "Reading Room (Non-AC) - 1 month(s)",
		Discounts: []models.Discount{}, FinalPrice: 3500, Currency: "NPR",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"success": true,
		"basePrice": 3500,
		"basePriceLabel": "Reading Room (Non-AC) - 1 month(s)",
		"discounts": [],
		"totalDiscount": 0,
		"finalPrice": 3500,
		"currency": "NPR"
	}`, rec.Body.String())
}
