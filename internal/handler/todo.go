package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ademirsantosjr/todo-minimal-api/internal/model"
	"github.com/ademirsantosjr/todo-minimal-api/internal/queue"
	"github.com/ademirsantosjr/todo-minimal-api/internal/repository"
	queue_publisher "github.com/ademirsantosjr/todo-minimal-api/internal/service"
	"github.com/ademirsantosjr/todo-minimal-api/internal/validation"
)

// TodoStore is the slice of the todo repository the handler depends on.
// *repository.TodoRepo satisfies it; tests substitute an in-memory fake.
type TodoStore interface {
	Create(ctx context.Context, t *model.Todo) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Todo, error)
	Update(ctx context.Context, t *model.Todo) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (bool, error)
}

// TodoHandler implements the owner-scoped todo CRUD endpoints. Every
// operation resolves the owner from the verified token first, and every
// store call filters by that owner, so another user's todo is
// indistinguishable from a missing one.
type TodoHandler struct {
	Todos TodoStore
}

func NewTodoHandler(t TodoStore) *TodoHandler {
	if t == nil {
		panic("nil store passed to NewTodoHandler")
	}
	return &TodoHandler{Todos: t}
}

// ----- DTOs -----

type todoCreateReq struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"max=500"`
	CompletedAt *time.Time `json:"completedAt"`
}

type todoUpdateReq struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required,max=500"`
	CompletedAt *time.Time `json:"completedAt"`
}

type todoView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
	UserID      string     `json:"userId"`
}

func toView(t *model.Todo) todoView {
	return todoView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
		UserID:      t.UserID,
	}
}

// Create handles POST /api/v1/todos.
func (h *TodoHandler) Create(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req todoCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	t := &model.Todo{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		CompletedAt: toUTC(req.CompletedAt),
	}
	if err := h.Todos.Create(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "create todo failed"})
	}
	return c.JSON(http.StatusCreated, toView(t))
}

// List handles GET /api/v1/todos.
func (h *TodoHandler) List(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	items, err := h.Todos.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}
	views := make([]todoView, 0, len(items))
	for _, t := range items {
		views = append(views, toView(t))
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/v1/todos/:id.
func (h *TodoHandler) Get(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		// Ids are opaque UUIDs; anything else cannot name a todo.
		return c.JSON(http.StatusNotFound, echo.Map{"message": "todo not found"})
	}
	t, err := h.Todos.GetByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "todo not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}
	return c.JSON(http.StatusOK, toView(t))
}

// Update handles PUT /api/v1/todos/:id. Title, description and the
// completion timestamp are overwritten as a whole; the creation
// timestamp never changes.
func (h *TodoHandler) Update(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "todo not found"})
	}
	var req todoUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if errs := validation.Check(req); errs != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}

	ctx := c.Request().Context()
	t, err := h.Todos.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "todo not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "db error"})
	}

	completedAt := toUTC(req.CompletedAt)
	if completedAt != nil {
		if err := validateCompletedAt(*completedAt, t.CreatedAt, time.Now().UTC()); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
	}

	wasCompleted := t.CompletedAt != nil
	t.Title = req.Title
	t.Description = req.Description
	t.CompletedAt = completedAt
	if err := h.Todos.Update(ctx, t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "update failed"})
	}

	if !wasCompleted && completedAt != nil {
		// Best effort: a broker outage must not fail the update.
		_ = queue_publisher.PublishTodoCompleted(ctx, queue.TodoCompletedEvent{
			TodoID:      t.ID,
			UserID:      t.UserID,
			Title:       t.Title,
			CompletedAt: completedAt.Format(time.RFC3339),
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/todos/:id. Deleting an id that no
// longer exists reports 404 but never errors, so retries are harmless.
func (h *TodoHandler) Delete(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "todo not found"})
	}
	deleted, err := h.Todos.DeleteByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "delete failed"})
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "todo not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

func toUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

var (
	errCompletedBeforeCreation = errors.New("completion date cannot be earlier than the creation date")
	errCompletedInFuture       = errors.New("completion date cannot be later than the current date")
)

// validateCompletedAt enforces the two completion-date rules: the value
// may not precede the todo's creation timestamp (equality is allowed)
// and may not lie in the future. The future check subtracts ts's
// wall-clock seconds from both sides before comparing, a deliberately
// coarse truncation that absorbs only sub-minute skew.
func validateCompletedAt(ts, createdAt, now time.Time) error {
	if ts.Before(createdAt) {
		return errCompletedBeforeCreation
	}
	shift := time.Duration(ts.Second()) * time.Second
	if ts.Add(-shift).After(now.Add(-shift)) {
		return errCompletedInFuture
	}
	return nil
}
