// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow handlers to distinguish
// between failure scenarios and translate them into the right HTTP
// status: not-found errors become 404, ErrEmailExists and
// ErrAlreadyConfigured become 409.
package repository

import "errors"

// ErrEmailExists is returned when registering with an email address
// that already belongs to another user.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrRoleNotFound is returned when a role name is not present in the
// roles table, which means the seed did not run.
var ErrRoleNotFound = errors.New("role not found")

// ErrTodoNotFound is returned when a todo does not exist or belongs to
// a different owner. The two cases are indistinguishable on purpose.
var ErrTodoNotFound = errors.New("todo not found")

// ErrAlreadyConfigured is returned by the bootstrap path when at least
// one user already exists in the system.
var ErrAlreadyConfigured = errors.New("application already configured")
