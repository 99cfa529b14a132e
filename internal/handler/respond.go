package handler

import (
	"errors"
	"log"
	"net/http"

	"course-checkout-api/internal/dto"
	"course-checkout-api/internal/service"

	"github.com/labstack/echo/v4"
)

func respondData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, &dto.Response{
		Success: true,
		Data:    data,
	})
}

func respondMessage(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, &dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondFail(c echo.Context, status int, message string) error {
	return c.JSON(status, &dto.Response{
		Success: false,
		Message: message,
	})
}

// respondServiceError maps service error kinds to HTTP statuses in one
// place. Unrecognized faults are logged server-side and reported as an
// opaque 500; detail is attached outside production only.
func respondServiceError(c echo.Context, err error, fallback string, includeDetail bool) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return respondFail(c, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return respondFail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrGatewayNotConfigured):
		return respondFail(c, http.StatusInternalServerError, "Payment service not configured")
	case errors.Is(err, service.ErrSignatureMismatch):
		return respondFail(c, http.StatusBadRequest, "Payment verification failed")
	case errors.Is(err, service.ErrPaymentNotFound):
		return respondFail(c, http.StatusNotFound, "Payment record not found")
	}

	log.Printf("%s: %v", fallback, err)

	resp := &dto.Response{
		Success: false,
		Message: fallback,
	}
	if includeDetail {
		resp.Error = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, resp)
}
