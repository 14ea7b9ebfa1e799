package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ademirsantosjr/todo-minimal-api/internal/model"
)

// UserRepo encapsulates all database queries related to users.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user. The caller supplies the generated UUID and
// the already-hashed password. A duplicate email is reported as
// ErrEmailExists. After the insert a follow-up SELECT populates the
// timestamp fields set by the database.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const qInsert = "INSERT INTO users (id, name, email, password_hash, role_id) VALUES (?,?,?,?,?)"
	if _, err := r.db.ExecContext(ctx, qInsert, u.ID, u.Name, u.Email, u.PasswordHash, u.RoleID); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	const qSelect = "SELECT created_at, updated_at FROM users WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, u.ID).Scan(&u.CreatedAt, &u.UpdatedAt)
}

// GetByEmail fetches a user by exact email match. No normalization is
// applied; lookups are case-sensitive.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = "SELECT id, name, email, password_hash, role_id, created_at, updated_at FROM users WHERE email = ? LIMIT 1"
	return r.scanOne(r.db.QueryRowContext(ctx, q, email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	const q = "SELECT id, name, email, password_hash, role_id, created_at, updated_at FROM users WHERE id = ? LIMIT 1"
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// UpdateRole reassigns the user's role. Writing the same role twice is
// allowed, so a zero affected-rows count is not treated as a failure;
// existence is checked by the caller via GetByID.
func (r *UserRepo) UpdateRole(ctx context.Context, id string, roleID uint8) error {
	const q = "UPDATE users SET role_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, roleID, id)
	return err
}

// Count returns the total number of users. The bootstrap endpoint uses
// it to decide whether the application has already been configured.
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}

func (r *UserRepo) scanOne(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
