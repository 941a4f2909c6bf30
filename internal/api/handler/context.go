package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studytrack/task-api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Session middleware. Its
// presence proves the middleware ran; an empty value means a handler was
// wired without session protection, which is a routing bug, so fail closed.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	}
	return id, nil
}
