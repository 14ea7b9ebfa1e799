package handler // handler defines http handlers

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ademirsantosjr/todo-minimal-api/internal/middleware"
)

// callerID extracts the authenticated user's id from the context and
// verifies it parses as a UUID. JWTAuth stores the raw subject claim;
// a token whose subject is not a well-formed UUID never reaches the
// repository layer.
func callerID(c echo.Context) (string, error) {
	v, ok := c.Get(middleware.CtxUserID).(string)
	if !ok || v == "" {
		return "", errors.New("missing user_id in context")
	}
	if _, err := uuid.Parse(v); err != nil {
		return "", err
	}
	return v, nil
}
