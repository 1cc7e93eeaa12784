package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/todo-warp-api/utils/response"
)

type APIServer struct {
	app             *fiber.App
	listenAddress   string
	shutdownTimeout time.Duration
}

func NewAPIServer(listenAddress string, shutdownTimeout time.Duration) *APIServer {
	return &APIServer{
		app: fiber.New(fiber.Config{
			AppName:               "todo-warp-api",
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		listenAddress:   listenAddress,
		shutdownTimeout: shutdownTimeout,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled or the listener fails.
func (s *APIServer) Run(ctx context.Context) error {
	log.Info("Starting API Server")
	log.Infof("Listening on %s", s.listenAddress)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.listenAddress)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Infof("Shutting down API Server (timeout %s)", s.shutdownTimeout)
		if err := s.app.ShutdownWithTimeout(s.shutdownTimeout); err != nil {
			return err
		}
		return <-errCh
	}
}

// errorHandler renders errors that escape handlers, including fiber's own
// 404/405 for unmatched routes, in the standard envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	switch code {
	case fiber.StatusNotFound:
		return response.NotFound(c, err.Error())
	case fiber.StatusInternalServerError:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return response.InternalServerError(c, "")
	default:
		return response.Error(c, code, err.Error(), "HTTP_ERROR")
	}
}
