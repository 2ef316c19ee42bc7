package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/facility-pricing-service/internal/api/handlers"
	"github.com/Cheertaboi/facility-pricing-service/internal/api/middleware"
	"github.com/Cheertaboi/facility-pricing-service/internal/models"
	"github.com/Cheertaboi/facility-pricing-service/internal/xerrors"
)

type pricerMock struct{ mock.Mock }

func (m *pricerMock) Calculate(ctx context.Context, req models.PriceRequest) (*models.PriceResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.PriceResult)
	return res, args.Error(1)
}

func (m *pricerMock) QuoteCanteen(ctx context.Context, req models.AmountRequest) (*models.PriceResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.PriceResult)
	return res, args.Error(1)
}

type orderMock struct{ mock.Mock }

func (m *orderMock) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderReceipt, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.OrderReceipt)
	return res, args.Error(1)
}

type topperMock struct{ mock.Mock }

func (m *topperMock) TopUp(ctx context.Context, userID string, amount float64) (float64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(float64), args.Error(1)
}

type couponAdminMock struct{ mock.Mock }

func (m *couponAdminMock) Create(ctx context.Context, req models.CreateCouponRequest) (*models.Coupon, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*models.Coupon)
	return c, args.Error(1)
}

func (m *couponAdminMock) Get(ctx context.Context, code string) (*models.Coupon, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*models.Coupon)
	return c, args.Error(1)
}

func request(method, path, body string, claims *middleware.Claims) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}
	return req
}

func student(uid string) *middleware.Claims {
	return &middleware.Claims{UserID: uid, Role: "student"}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPricingHandler_Calculate(t *testing.T) {
	svc := new(pricerMock)
	h := handlers.NewPricingHandler(svc)

	svc.On("Calculate", mock.Anything, models.PriceRequest{
		UserID: "u1", ServiceType: models.ServiceReadingRoom, RoomType: models.RoomAC, Months: 6,
	}).Return(&models.PriceResult{
		BasePrice: 22500, BasePriceLabel: "Reading Room (AC) - 6 month(s)",
		Discounts:     []models.Discount{{ID: "bulk", Name: "Bulk discount (6 months)", Amount: 2250, Type: models.DiscountAutomated}},
		TotalDiscount: 2250, FinalPrice: 20250, Currency: "NPR",
	}, nil)

	rec := httptest.NewRecorder()
	h.Calculate(rec, request(http.MethodPost, "/payments/calculate",
		`{"serviceType":"readingRoom","roomType":"ac","months":6}`, student("u1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 20250.0, body["finalPrice"])
	assert.Equal(t, "NPR", body["currency"])
	assert.Len(t, body["discounts"], 1)
	svc.AssertExpectations(t)
}

func TestPricingHandler_Calculate_RejectedCoupon(t *testing.T) {
	svc := new(pricerMock)
	h := handlers.NewPricingHandler(svc)

	svc.On("Calculate", mock.Anything, mock.Anything).Return(nil, xerrors.InvalidArgument("Coupon expired"))

	rec := httptest.NewRecorder()
	h.Calculate(rec, request(http.MethodPost, "/payments/calculate",
		`{"userId":"u1","serviceType":"hostel","couponCode":"OLD"}`, student("u1")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"invalid-argument","message":"Coupon expired"}}`, rec.Body.String())
}

func TestPricingHandler_Calculate_OtherUserForbidden(t *testing.T) {
	h := handlers.NewPricingHandler(new(pricerMock))

	rec := httptest.NewRecorder()
	h.Calculate(rec, request(http.MethodPost, "/payments/calculate",
		`{"userId":"u2","serviceType":"hostel"}`, student("u1")))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPricingHandler_Calculate_AdminMayPriceForOthers(t *testing.T) {
	svc := new(pricerMock)
	h := handlers.NewPricingHandler(svc)

	svc.On("Calculate", mock.Anything, mock.MatchedBy(func(r models.PriceRequest) bool { return r.UserID == "u2" })).
		Return(&models.PriceResult{Discounts: []models.Discount{}}, nil)

	rec := httptest.NewRecorder()
	h.Calculate(rec, request(http.MethodPost, "/payments/calculate",
		`{"userId":"u2","serviceType":"hostel"}`, &middleware.Claims{UserID: "ops", Role: middleware.RoleAdmin}))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestPricingHandler_Calculate_MalformedBody(t *testing.T) {
	h := handlers.NewPricingHandler(new(pricerMock))

	rec := httptest.NewRecorder()
	h.Calculate(rec, request(http.MethodPost, "/payments/calculate", `{"months":"six"`, student("u1")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricingHandler_QuoteCanteen(t *testing.T) {
	svc := new(pricerMock)
	h := handlers.NewPricingHandler(svc)

	svc.On("QuoteCanteen", mock.Anything, models.AmountRequest{UserID: "u1", Amount: 420}).
		Return(&models.PriceResult{BasePrice: 420, BasePriceLabel: "Canteen order", Discounts: []models.Discount{}, FinalPrice: 420, Currency: "NPR"}, nil)

	rec := httptest.NewRecorder()
	h.QuoteCanteen(rec, request(http.MethodPost, "/canteen/quote", `{"amount":420}`, student("u1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Canteen order", decodeBody(t, rec)["basePriceLabel"])
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	svc := new(orderMock)
	h := handlers.NewOrderHandler(svc)

	svc.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(r models.OrderRequest) bool {
		return r.OrderKey == "idem-1" && r.UserID == "u1"
	})).Return(&models.OrderReceipt{Order: &models.Order{ID: "o1", OrderKey: "idem-1"}, Balance: 100}, nil).Once()

	req := request(http.MethodPost, "/orders", `{"serviceType":"hostel","months":1}`, student("u1"))
	req.Header.Set(handlers.IdempotencyKeyHeader, "idem-1")
	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, 100.0, data["balance"])
	svc.AssertExpectations(t)
}

func TestOrderHandler_PlaceOrder_ReplayIsOK(t *testing.T) {
	svc := new(orderMock)
	h := handlers.NewOrderHandler(svc)

	svc.On("PlaceOrder", mock.Anything, mock.Anything).
		Return(&models.OrderReceipt{Order: &models.Order{ID: "o1"}, Replayed: true}, nil)

	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, request(http.MethodPost, "/orders", `{"orderKey":"k","serviceType":"hostel"}`, student("u1")))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_PlaceOrder_InsufficientBalance(t *testing.T) {
	svc := new(orderMock)
	h := handlers.NewOrderHandler(svc)

	svc.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil, xerrors.FailedPrecondition("Insufficient balance"))

	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, request(http.MethodPost, "/orders", `{"serviceType":"hostel"}`, student("u1")))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Insufficient balance")
}

func TestUserHandler_TopUp(t *testing.T) {
	svc := new(topperMock)
	r := chi.NewRouter()
	r.Post("/admin/users/{id}/balance", handlers.NewUserHandler(svc).TopUp)

	svc.On("TopUp", mock.Anything, "u1", 1000.0).Return(2500.0, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, request(http.MethodPost, "/admin/users/u1/balance", `{"amount":1000}`, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"userId":"u1","balance":2500}}`, rec.Body.String())
}

func TestCouponHandler(t *testing.T) {
	svc := new(couponAdminMock)
	h := handlers.NewCouponHandler(svc)
	r := chi.NewRouter()
	r.Post("/admin/coupons", h.CreateCoupon)
	r.Get("/admin/coupons/{code}", h.GetCoupon)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(req models.CreateCouponRequest) bool {
		return req.Code == "SAVE10" && req.Type == models.DiscountPercentage
	})).Return(&models.Coupon{ID: "c1", Code: "SAVE10", Type: models.DiscountPercentage, Value: 10}, nil)
	svc.On("Get", mock.Anything, "SAVE10").Return(&models.Coupon{ID: "c1", Code: "SAVE10"}, nil)
	svc.On("Get", mock.Anything, "NONE").Return(nil, xerrors.NotFound("Coupon not found"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, request(http.MethodPost, "/admin/coupons", `{"code":"SAVE10","type":"percentage","value":10}`, nil))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, request(http.MethodGet, "/admin/coupons/SAVE10", "", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", decodeBody(t, rec)["data"].(map[string]interface{})["id"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, request(http.MethodGet, "/admin/coupons/NONE", "", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
