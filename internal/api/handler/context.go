package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user identity injected by the Auth middleware
// and fast-fails before any service call: an empty id means the
// middleware never ran or the token carried no subject, so the request
// must not reach user-scoped storage.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "login.error_session")
	}
	return userID, nil
}
