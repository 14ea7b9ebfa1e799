package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ademirsantosjr/todo-minimal-api/internal/model"
)

// TodoRepo encapsulates all database queries related to todos. Every
// read, update and delete filters by owner in the WHERE clause, so a
// todo belonging to another user behaves exactly like a missing row.
type TodoRepo struct {
	db *sql.DB
}

func NewTodoRepo(db *sql.DB) *TodoRepo { return &TodoRepo{db: db} }

// Create inserts a new todo with the caller-generated UUID and the
// already-assigned creation timestamp.
func (r *TodoRepo) Create(ctx context.Context, t *model.Todo) error {
	const q = "INSERT INTO todos (id, user_id, title, description, created_at, completed_at) VALUES (?,?,?,?,?,?)"
	completed := nullTime(t.CompletedAt)
	_, err := r.db.ExecContext(ctx, q, t.ID, t.UserID, t.Title, t.Description, t.CreatedAt, completed)
	return err
}

// GetByIDAndOwner fetches a todo only if it belongs to the given owner.
// A row owned by someone else yields ErrTodoNotFound, identical to a
// non-existent id.
func (r *TodoRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*model.Todo, error) {
	const q = `SELECT id, user_id, title, description, created_at, completed_at
	           FROM todos WHERE id = ? AND user_id = ?`
	var (
		t         model.Todo
		completed sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, q, id, ownerID).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreatedAt, &completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	if completed.Valid {
		utc := completed.Time.UTC()
		t.CompletedAt = &utc
	}
	return &t, nil
}

// ListByOwner returns all todos of one owner ordered by creation time.
func (r *TodoRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Todo, error) {
	const q = `SELECT id, user_id, title, description, created_at, completed_at
	           FROM todos WHERE user_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Todo
	for rows.Next() {
		var (
			t         model.Todo
			completed sql.NullTime
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreatedAt, &completed); err != nil {
			return nil, err
		}
		if completed.Valid {
			utc := completed.Time.UTC()
			t.CompletedAt = &utc
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites title, description and completion timestamp of an
// owned todo. The caller is expected to have loaded the row first; an
// update that writes identical values affects zero rows on MySQL, so
// the affected count is deliberately not inspected here.
func (r *TodoRepo) Update(ctx context.Context, t *model.Todo) error {
	const q = `UPDATE todos SET title = ?, description = ?, completed_at = ?
	           WHERE id = ? AND user_id = ?`
	_, err := r.db.ExecContext(ctx, q, t.Title, t.Description, nullTime(t.CompletedAt), t.ID, t.UserID)
	return err
}

// DeleteByIDAndOwner removes an owned todo. It reports false when no
// matching row existed, which makes repeated deletes an idempotent
// negative rather than an error.
func (r *TodoRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (bool, error) {
	const q = "DELETE FROM todos WHERE id = ? AND user_id = ?"
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
