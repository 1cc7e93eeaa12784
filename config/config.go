package config

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	GO_ENV     string
	HOST       string
	PORT       int
	STATIC_DIR string
	LOG_FILE   string
	// Security middleware
	ALLOWED_ORIGINS     string
	RATE_LIMIT_REQUESTS int
	RATE_LIMIT_WINDOW   time.Duration
	SHUTDOWN_TIMEOUT    time.Duration
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 3030
	}

	host := os.Getenv("HOST")
	if host == "" {
		host = "127.0.0.1"
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://127.0.0.1:3030,http://localhost:3030"
	}

	rateLimit, err := strconv.Atoi(os.Getenv("RATE_LIMIT_REQUESTS"))
	if err != nil || rateLimit < 0 {
		rateLimit = 0
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:              os.Getenv("GO_ENV"),
		HOST:                host,
		PORT:                port,
		STATIC_DIR:          staticDir,
		LOG_FILE:            os.Getenv("LOG_FILE"),
		ALLOWED_ORIGINS:     allowedOrigins,
		RATE_LIMIT_REQUESTS: rateLimit,
		RATE_LIMIT_WINDOW:   durationOr(os.Getenv("RATE_LIMIT_WINDOW"), time.Minute),
		SHUTDOWN_TIMEOUT:    durationOr(os.Getenv("SHUTDOWN_TIMEOUT"), 5*time.Second),
	}

	return envVariables, nil
}

// ListenAddress returns host:port for the API server.
func (e *EnviornmentVariable) ListenAddress() string {
	return net.JoinHostPort(e.HOST, strconv.Itoa(e.PORT))
}

func durationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
