package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func callWithRole(t *testing.T, mw echo.MiddlewareFunc, role any) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(CtxRole, role)
	}
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	assert.NoError(t, h(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		allowed  []string
		role     any
		wantCode int
	}{
		{"matching role", []string{"USER"}, "USER", http.StatusOK},
		{"one of several", []string{"USER", "ADMIN"}, "ADMIN", http.StatusOK},
		{"pending rejected on todo routes", []string{"USER"}, "PENDING", http.StatusForbidden},
		{"admin rejected on todo routes", []string{"USER"}, "ADMIN", http.StatusForbidden},
		{"missing role", []string{"USER"}, nil, http.StatusForbidden},
		{"role of wrong type", []string{"USER"}, 42, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := callWithRole(t, RequireRole(tt.allowed...), tt.role)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
