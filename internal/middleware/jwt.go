package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ademirsantosjr/todo-minimal-api/internal/utils"
)

// Context keys under which JWTAuth stores the verified claims.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject, email and role claims into the request
// context. The provided secret must match the one used when issuing
// tokens. Besides the signature, the issuer and audience claims are
// checked against the fixed service identifier so tokens from other
// systems signed with a shared key are rejected. Handlers access the
// authenticated identity via c.Get(CtxUserID) etc.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw,
				func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, echo.ErrUnauthorized
					}
					return []byte(secret), nil
				},
				jwt.WithValidMethods([]string{"HS256"}),
				jwt.WithIssuer(utils.Issuer),
				jwt.WithAudience(utils.Issuer),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid claims"})
			}

			// The subject must be present; handlers additionally parse it
			// as a UUID before touching storage.
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid claims"})
			}
			c.Set(CtxUserID, sub)
			c.Set(CtxEmail, claims["email"])
			c.Set(CtxRole, claims["role"])
			return next(c)
		}
	}
}
