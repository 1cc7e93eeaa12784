package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sahilchouksey/todo-warp-api/api"
	"github.com/sahilchouksey/todo-warp-api/config"
	"github.com/sahilchouksey/todo-warp-api/database"
	"github.com/sahilchouksey/todo-warp-api/router"
	"github.com/sahilchouksey/todo-warp-api/utils"
	"github.com/sahilchouksey/todo-warp-api/utils/middleware"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	logCloser, err := utils.SetupLogger(getEnv.GO_ENV, getEnv.LOG_FILE)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// The store lives for the whole process
	store := database.NewMemoryStore()

	server := NewServer(getEnv, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}

// NewServer wires middleware and routes around store without listening.
func NewServer(getEnv *config.EnviornmentVariable, store database.Storage) *api.APIServer {
	server := api.NewAPIServer(getEnv.ListenAddress(), getEnv.SHUTDOWN_TIMEOUT)
	app := server.GetEngine()

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    getEnv.ALLOWED_ORIGINS,
		RateLimitRequests: getEnv.RATE_LIMIT_REQUESTS,
		RateLimitWindow:   getEnv.RATE_LIMIT_WINDOW,
		DisableAccessLog:  getEnv.GO_ENV == "test",
	})

	router.SetupRoutes(app, store, getEnv.STATIC_DIR)

	return server
}
