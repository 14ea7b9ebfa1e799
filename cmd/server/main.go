package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ademirsantosjr/todo-minimal-api/internal/config"
	"github.com/ademirsantosjr/todo-minimal-api/internal/database"
	"github.com/ademirsantosjr/todo-minimal-api/internal/handler"
	"github.com/ademirsantosjr/todo-minimal-api/internal/middleware"
	"github.com/ademirsantosjr/todo-minimal-api/internal/queue"
	"github.com/ademirsantosjr/todo-minimal-api/internal/repository"
	"github.com/ademirsantosjr/todo-minimal-api/internal/router"
)

func main() {
	_ = godotenv.Load() // best effort; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	users := repository.NewUserRepo(db)
	roles := repository.NewRoleRepo(db)
	todos := repository.NewTodoRepo(db)

	rdb := config.NewRedisClient() // nil disables rate limiting and caching
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}
	limit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	cache := middleware.TodoCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, roles), handler.NewSetupHandler(cfg, users, roles), limit)
	router.RegisterTodos(e, handler.NewTodoHandler(todos), cfg.JWTSecret, cache)
	router.RegisterAdmin(e, handler.NewAdminHandler(users, roles), cfg.JWTSecret)

	go queue.StartConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
