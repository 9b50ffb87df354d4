package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

// Locale extracts the client's display language from the
// accept-language header and stores the bare code in context. Only the
// primary tag is honored ("sv-SE;q=0.9" → "sv"); missing or empty
// headers fall back to the default language.
func Locale() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("lang", LanguageFromHeader(c.Request().Header.Get("Accept-Language")))
			return next(c)
		}
	}
}

// LanguageFromHeader reduces an Accept-Language header value to a
// single lowercase language code.
func LanguageFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return domain.DefaultLanguage
	}
	if i := strings.IndexAny(header, ",;"); i >= 0 {
		header = header[:i]
	}
	if i := strings.Index(header, "-"); i >= 0 {
		header = header[:i]
	}
	code := strings.ToLower(strings.TrimSpace(header))
	if code == "" {
		return domain.DefaultLanguage
	}
	return code
}
