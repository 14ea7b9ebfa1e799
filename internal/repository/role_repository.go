package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ademirsantosjr/todo-minimal-api/internal/model"
)

// RoleRepo reads the fixed role set seeded at startup.
type RoleRepo struct {
	db *sql.DB
}

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{db: db} }

// GetByName fetches a role by its name (ADMIN, PENDING or USER).
// ErrRoleNotFound indicates the seed never ran.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	const q = "SELECT id, name FROM roles WHERE name = ? LIMIT 1"
	var role model.Role
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

// GetByID fetches a role by its numeric id. Used to resolve a user's
// role name when issuing tokens.
func (r *RoleRepo) GetByID(ctx context.Context, id uint8) (*model.Role, error) {
	const q = "SELECT id, name FROM roles WHERE id = ? LIMIT 1"
	var role model.Role
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}
