package handler

import (
	"net/http"
	"time"

	"course-checkout-api/internal/dto"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db                 *gorm.DB
	environment        string
	razorpayConfigured bool
}

func NewHealthHandler(db *gorm.DB, environment string, razorpayConfigured bool) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		environment:        environment,
		razorpayConfigured: razorpayConfigured,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, &dto.Response{
			Success: false,
			Message: "Database connection failed",
		})
	}

	return respondData(c, http.StatusOK, &dto.HealthData{
		Status:             "OK",
		Message:            "Course Platform Backend is running!",
		Database:           "Connected",
		Timestamp:          time.Now().UTC(),
		Environment:        h.environment,
		RazorpayConfigured: h.razorpayConfigured,
	})
}
