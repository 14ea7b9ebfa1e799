package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademirsantosjr/todo-minimal-api/internal/utils"
)

const testSecret = "unit-test-secret"

func newProtectedEcho() *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get(CtxUserID),
			"email":   c.Get(CtxEmail),
			"role":    c.Get(CtxRole),
		})
	}, JWTAuth(testSecret))
	return e
}

func TestJWTAuthMissingHeader(t *testing.T) {
	e := newProtectedEcho()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMalformedToken(t *testing.T) {
	e := newProtectedEcho()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, "0b7b5a40-9a5e-4f0c-8d4e-2f1a3b4c5d6e", "bob@example.com", "USER", 60)
	require.NoError(t, err)

	e := newProtectedEcho()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "0b7b5a40-9a5e-4f0c-8d4e-2f1a3b4c5d6e")
	assert.Contains(t, rec.Body.String(), "bob@example.com")
	assert.Contains(t, rec.Body.String(), "USER")
}

func TestJWTAuthRejectsForeignIssuer(t *testing.T) {
	// Signed with the right key but by a different service.
	claims := jwt.MapClaims{
		"sub":  "0b7b5a40-9a5e-4f0c-8d4e-2f1a3b4c5d6e",
		"role": "USER",
		"iss":  "some-other-service",
		"aud":  "some-other-service",
		"exp":  time.Now().UTC().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	e := newProtectedEcho()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub": "0b7b5a40-9a5e-4f0c-8d4e-2f1a3b4c5d6e",
		"iss": utils.Issuer,
		"aud": utils.Issuer,
		"exp": time.Now().UTC().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	e := newProtectedEcho()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
