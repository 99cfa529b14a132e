package handler

import (
	"net/http"

	"course-checkout-api/internal/config"
	"course-checkout-api/internal/dto"
	"course-checkout-api/internal/middleware"
	"course-checkout-api/internal/model"
	"course-checkout-api/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	checkout       config.Checkout
	includeDetail  bool
}

func NewPaymentHandler(paymentService service.PaymentService, checkout config.Checkout, includeDetail bool) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		checkout:       checkout,
		includeDetail:  includeDetail,
	}
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "Access token required")
	}

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Valid amount is required")
	}
	if req.Amount < 1 {
		return respondFail(c, http.StatusBadRequest, "Valid amount is required")
	}

	order, err := h.paymentService.CreateOrder(ctx, &model.User{
		ID:   user.ID,
		Name: user.Name,
	}, req.Amount)
	if err != nil {
		return respondServiceError(c, err, "Failed to create payment order", h.includeDetail)
	}

	return respondData(c, http.StatusOK, &dto.CreateOrderData{
		Order:  order,
		Amount: req.Amount,
	})
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "Access token required")
	}

	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Payment verification failed")
	}

	err := h.paymentService.VerifyPayment(ctx, user.ID, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		return respondServiceError(c, err, "Payment verification failed", h.includeDetail)
	}

	// flat single-SKU catalog: the entitlement is a static coupon
	return respondMessage(c, http.StatusOK, "Payment verified successfully", &dto.VerifyPaymentData{
		CouponCode:  h.checkout.CouponCode,
		RedirectURL: h.checkout.RedirectURL,
	})
}

func (h *PaymentHandler) History(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "Access token required")
	}

	payments, err := h.paymentService.History(ctx, user.ID)
	if err != nil {
		return respondServiceError(c, err, "Failed to fetch payment history", h.includeDetail)
	}

	infos := make([]*dto.PaymentInfo, len(payments))
	for i, p := range payments {
		infos[i] = &dto.PaymentInfo{
			ID:                p.ID,
			Amount:            p.Amount,
			Status:            p.Status,
			Verified:          p.Verified,
			CreatedAt:         p.CreatedAt,
			RazorpayPaymentID: p.RazorpayPaymentID,
		}
	}

	return respondData(c, http.StatusOK, &dto.HistoryData{Payments: infos})
}
