package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

// errorEnvelope is the canonical error shape for all API failures: the
// usual application envelope with a non-"200" returncode and a
// translation-key message.
type errorEnvelope struct {
	Returncode string `json:"returncode"`
	Message    string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP statuses and
//     message keys.
//   - Logs unexpected errors internally without leaking details.
//   - Renders the returncode envelope every client expects.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Returncode: strconv.Itoa(code), Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes + message keys.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "login.error_invalid"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "login.error_invalid"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "login.error_exists"
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "pricelist.error_not_found"
	case errors.Is(err, domain.ErrDuplicateArticle):
		return http.StatusConflict, "pricelist.error_duplicate"
	case errors.Is(err, domain.ErrLanguageNotSupported):
		return http.StatusBadRequest, "language.error_unsupported"
	case errors.Is(err, domain.ErrTermsNotFound):
		return http.StatusNotFound, "terms.error_not_found"
	}

	// Unexpected error: log the real cause, return a generic key.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "login.error_server"
}
