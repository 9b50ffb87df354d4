package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/123fakturera/pricelist-system/internal/api/metrics"
	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

// sessionError is the envelope returned whenever the bearer token is
// unusable. The returncode distinguishes the two sub-kinds clients
// must react to: "300" (token missing or invalid) and "301" (expired).
type sessionError struct {
	Returncode string `json:"returncode"`
	Message    string `json:"message"`
}

// Auth validates the JWT and injects the user identity into context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.SessionRejectionsTotal.WithLabelValues("missing").Inc()
				return c.JSON(http.StatusUnauthorized, sessionError{
					Returncode: domain.CodeSessionInvalid,
					Message:    "login.error_session",
				})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.SessionRejectionsTotal.WithLabelValues("invalid").Inc()
				return c.JSON(http.StatusUnauthorized, sessionError{
					Returncode: domain.CodeSessionInvalid,
					Message:    "login.error_session",
				})
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				if errors.Is(err, jwt.ErrTokenExpired) {
					metrics.SessionRejectionsTotal.WithLabelValues("expired").Inc()
					return c.JSON(http.StatusUnauthorized, sessionError{
						Returncode: domain.CodeSessionExpired,
						Message:    "login.error_expired",
					})
				}
				metrics.SessionRejectionsTotal.WithLabelValues("invalid").Inc()
				return c.JSON(http.StatusUnauthorized, sessionError{
					Returncode: domain.CodeSessionInvalid,
					Message:    "login.error_session",
				})
			}

			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("name", claims["name"])

			return next(c)
		}
	}
}
