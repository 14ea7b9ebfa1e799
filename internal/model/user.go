package model

import "time"

// User represents an application user record as stored in the
// `users` table. The json tags are omitted because these structs are
// used internally by the repository layer; handlers define separate
// response types with appropriate JSON tags.
//
// Fields:
//  ID           – opaque UUID identifier of the user.
//  Name         – display name supplied at registration.
//  Email        – unique email address (matched exactly, case-sensitive).
//  PasswordHash – bcrypt hashed password.
//  RoleID       – foreign key into the roles table (tinyint).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           string    // users.id (CHAR(36) UUID)
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	RoleID       uint8     // users.role_id (references roles.id)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Role represents a row in the `roles` table. It maps a small integer
// ID to a role name. The set is fixed and seeded once at startup:
// ADMIN, PENDING and USER. Users reference this table via RoleID.
type Role struct {
	ID   uint8  // roles.id
	Name string // roles.name (ADMIN | PENDING | USER)
}

// Role names used across middleware, handlers and seeding. Keeping them
// as constants avoids dynamic role strings at call sites.
const (
	RoleAdmin   = "ADMIN"
	RolePending = "PENDING"
	RoleUser    = "USER"
)
