package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ademirsantosjr/todo-minimal-api/internal/model"
	"github.com/ademirsantosjr/todo-minimal-api/internal/repository"
)

// AdminHandler exposes the admin-only user management endpoints.
type AdminHandler struct {
	Users UserStore
	Roles RoleStore
}

func NewAdminHandler(u UserStore, r RoleStore) *AdminHandler {
	return &AdminHandler{Users: u, Roles: r}
}

// Approve handles POST /api/v1/users/:id/approve. It promotes a PENDING
// user to USER. Approving a user who already has the USER role simply
// reassigns it; there is no path out of ADMIN or back to PENDING.
func (h *AdminHandler) Approve(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	ctx := c.Request().Context()

	if _, err := h.Users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	role, err := h.Roles.GetByName(ctx, model.RoleUser)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "role USER not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "query failed"})
	}
	if err := h.Users.UpdateRole(ctx, id, role.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "approve failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user approved"})
}
