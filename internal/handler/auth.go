package handler

import (
	"net/http"

	"course-checkout-api/internal/dto"
	"course-checkout-api/internal/middleware"
	"course-checkout-api/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	userService   service.UserService
	includeDetail bool
}

func NewAuthHandler(userService service.UserService, includeDetail bool) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		includeDetail: includeDetail,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Please provide name, email, and password")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return respondFail(c, http.StatusBadRequest, "Please provide name, email, and password")
	}
	if len(req.Password) < 8 {
		return respondFail(c, http.StatusBadRequest, "Password must be at least 8 characters long")
	}

	user, token, err := h.userService.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err, "Registration failed", h.includeDetail)
	}

	return respondMessage(c, http.StatusCreated, "User registered successfully", &dto.AuthData{
		User: &dto.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Token: token,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Please provide email and password")
	}

	if req.Email == "" || req.Password == "" {
		return respondFail(c, http.StatusBadRequest, "Please provide email and password")
	}

	user, token, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err, "Login failed", h.includeDetail)
	}

	return respondMessage(c, http.StatusOK, "Login successful", &dto.AuthData{
		User: &dto.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Token: token,
	})
}

// Me echoes the user resolved by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return respondFail(c, http.StatusUnauthorized, "Access token required")
	}

	return respondData(c, http.StatusOK, &dto.MeData{User: user})
}
