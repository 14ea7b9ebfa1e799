package handler

import (
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

// SetupHandler owns the one-time admin bootstrap endpoint.
type SetupHandler struct {
	Cfg   config.Config
	Users UserStore
	Roles RoleStore
}

func NewSetupHandler(cfg config.Config, u UserStore, r RoleStore) *SetupHandler {
	return &SetupHandler{Cfg: cfg, Users: u, Roles: r}
}

// Setup handles POST /api/v1/setup. It creates the first ADMIN user and
// refuses to run again once any user exists, regardless of role. The
// existence check and the insert are not one atomic statement; two
// racing setup calls can in principle both pass the count, which is an
// accepted limitation of a bootstrap endpoint called once by a human.
func (h *SetupHandler) Setup(c echo.Context) error {
	var req registrationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	ctx := c.Request().Context()

	n, err := h.Users.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	if n > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"message": repository.ErrAlreadyConfigured.Error()})
	}
	admin, err := h.Roles.GetByName(ctx, model.RoleAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "role ADMIN not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create admin failed"})
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		RoleID:       admin.ID,
	}
	if err := h.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "a user with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create admin failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "admin created"})
}
