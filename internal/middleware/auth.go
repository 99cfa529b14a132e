package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"course-checkout-api/internal/auth"
	"course-checkout-api/internal/dto"
	"course-checkout-api/internal/repository"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ContextUserKey is where the resolved user lands in the echo context.
const ContextUserKey = "user"

// UserFromContext returns the user attached by AuthMiddleware.
func UserFromContext(c echo.Context) (*dto.UserInfo, bool) {
	user, ok := c.Get(ContextUserKey).(*dto.UserInfo)
	return user, ok
}

// AuthMiddleware gates protected routes behind a bearer session token. The
// decoded user id is resolved against the store on every request, so a
// still-valid token for a deleted account is rejected.
func AuthMiddleware(codec *auth.TokenCodec, userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, &dto.Response{
					Success: false,
					Message: "Access token required",
				})
			}

			userID, err := codec.Validate(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, &dto.Response{
					Success: false,
					Message: "Invalid or expired token",
				})
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusUnauthorized, &dto.Response{
						Success: false,
						Message: "User not found",
					})
				}
				// infrastructure faults are indistinguishable from forged
				// tokens to the caller, only in logs
				log.Println("auth middleware error:", err)
				return c.JSON(http.StatusForbidden, &dto.Response{
					Success: false,
					Message: "Invalid or expired token",
				})
			}

			c.Set(ContextUserKey, &dto.UserInfo{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			})

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
