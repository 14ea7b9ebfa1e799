package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ademirsantosjr/todo-minimal-api/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "todo",
		DBPass: "hunter2",
		DBHost: "db.internal",
		DBPort: "3306",
		DBName: "todos",
	}
	assert.Equal(t,
		"todo:hunter2@tcp(db.internal:3306)/todos?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}

func TestDSNWithoutPassword(t *testing.T) {
	cfg := config.Config{
		DBUser: "todo",
		DBHost: "localhost",
		DBPort: "3307",
		DBName: "todos",
	}
	assert.Equal(t,
		"todo@tcp(localhost:3307)/todos?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}
