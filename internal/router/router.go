package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/ademirsantosjr/todo-minimal-api/internal/handler"
	"github.com/ademirsantosjr/todo-minimal-api/internal/middleware"
	"github.com/ademirsantosjr/todo-minimal-api/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check
// for load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers registration, login and the one-time setup
// endpoint. None of these require a token; all of them sit behind the
// rate limiter so credential stuffing and bootstrap probing are
// throttled per client.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, s *handler.SetupHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/api/v1/auth", limit)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	e.POST("/api/v1/setup", s.Setup, limit)
}

// RegisterTodos registers the owner-scoped todo CRUD under /api/v1/todos.
// The group requires a valid access token and the USER role: PENDING
// accounts are rejected with 403 until approved, and ADMIN stays out of
// user data. The per-user response cache wraps the handlers last so it
// sees the authenticated identity.
func RegisterTodos(e *echo.Echo, t *handler.TodoHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group("/api/v1/todos")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleUser))
	g.Use(cache)
	g.POST("", t.Create)
	g.GET("", t.List)
	g.GET("/:id", t.Get)
	g.PUT("/:id", t.Update)
	g.DELETE("/:id", t.Delete)
}

// RegisterAdmin registers the admin-only approval endpoint.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/api/v1/users")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))
	g.POST("/:id/approve", a.Approve)
}
