package database

import (
	"context"
	"database/sql"
)

// statements creates the three tables if they do not exist yet. Roles are
// referenced by a fixed tinyint id; users and todos use CHAR(36) UUIDs so
// identifiers are not guessable.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id   TINYINT UNSIGNED NOT NULL PRIMARY KEY,
		name VARCHAR(16) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(36) NOT NULL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role_id       TINYINT UNSIGNED NOT NULL,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_users_role FOREIGN KEY (role_id) REFERENCES roles (id)
	)`,
	`CREATE TABLE IF NOT EXISTS todos (
		id           CHAR(36) NOT NULL PRIMARY KEY,
		user_id      CHAR(36) NOT NULL,
		title        VARCHAR(255) NOT NULL,
		description  VARCHAR(500) NOT NULL DEFAULT '',
		created_at   DATETIME NOT NULL,
		completed_at DATETIME NULL,
		CONSTRAINT fk_todos_user FOREIGN KEY (user_id) REFERENCES users (id),
		INDEX idx_todos_user (user_id)
	)`,
}

// Migrate creates the schema and seeds the fixed role set. It is safe to
// run on every startup: tables are created only when missing and role
// inserts use INSERT IGNORE so existing rows are left untouched.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, q := range statements {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	const seed = "INSERT IGNORE INTO roles (id, name) VALUES (1,'ADMIN'),(2,'PENDING'),(3,'USER')"
	_, err := db.ExecContext(ctx, seed)
	return err
}
