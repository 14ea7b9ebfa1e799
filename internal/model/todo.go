package model

import "time"

// Todo is a row in the `todos` table. A todo belongs to exactly one
// user and every repository access is filtered by UserID, so a row is
// never visible outside its owner. CreatedAt is set once at insert
// time and never changes; CompletedAt stays nil until the owner marks
// the item done. All timestamps are UTC.
type Todo struct {
	ID          string     // todos.id (CHAR(36) UUID)
	UserID      string     // todos.user_id (owner)
	Title       string     // todos.title
	Description string     // todos.description
	CreatedAt   time.Time  // todos.created_at (immutable)
	CompletedAt *time.Time // todos.completed_at (nullable)
}
