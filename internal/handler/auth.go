package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ademirsantosjr/todo-minimal-api/internal/config"
	"github.com/ademirsantosjr/todo-minimal-api/internal/model"
	"github.com/ademirsantosjr/todo-minimal-api/internal/repository"
	"github.com/ademirsantosjr/todo-minimal-api/internal/utils"
	"github.com/ademirsantosjr/todo-minimal-api/internal/validation"
)

// UserStore is the slice of the user repository the handlers depend on.
// *repository.UserRepo satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdateRole(ctx context.Context, id string, roleID uint8) error
	Count(ctx context.Context) (int64, error)
}

// RoleStore resolves the fixed role set. Satisfied by *repository.RoleRepo.
type RoleStore interface {
	GetByName(ctx context.Context, name string) (*model.Role, error)
	GetByID(ctx context.Context, id uint8) (*model.Role, error)
}

// AuthHandler bundles dependencies for registration and login.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
	Roles RoleStore
}

func NewAuthHandler(cfg config.Config, u UserStore, r RoleStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Roles: r}
}

// ----- DTOs -----

type registrationReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register creates a new user with the PENDING role. The account cannot
// touch todo endpoints until an administrator approves it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registrationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	ctx := c.Request().Context()

	pending, err := h.Roles.GetByName(ctx, model.RolePending)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "default user role not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create user failed"})
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		RoleID:       pending.ID,
	}
	if err := h.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "a user with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create user failed"})
	}

	return c.JSON(http.StatusCreated, userView{ID: u.ID, Name: u.Name, Email: u.Email})
}

// Login verifies the credentials and returns a signed one-hour access
// token. Unknown email and wrong password produce the same 401 so the
// status code cannot be used to enumerate accounts; the unknown-email
// path also burns a bcrypt comparison to keep the timing comparable.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email and password are required"})
	}

	ctx := c.Request().Context()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.BurnPassword(req.Password)
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}

	role, err := h.Roles.GetByID(ctx, u.RoleID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, role.Name, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": access.Token})
}
