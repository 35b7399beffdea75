package middleware

import (
	"strings"

	"bump-planner/core/errors"
	"bump-planner/core/logger"
	"bump-planner/core/utils"

	"github.com/labstack/echo/v4"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "user_email"
)

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware validates the Bearer token and stores the caller identity on
// the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrMissingAuthorizationHeader, "Missing Authorization header", nil))
			}

			token := header
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}

			tokenData, appErr := utils.ValidateAndParseToken(token)
			if appErr != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", "code", appErr.Code)
				return echo.NewHTTPError(401, appErr)
			}

			c.Set(ContextKeyUserID, tokenData.UserID)
			c.Set(ContextKeyEmail, tokenData.Email)
			return next(c)
		}
	}
}
