package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-warp-api/database"
	"github.com/sahilchouksey/todo-warp-api/utils/response"
)

func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return response.ServiceUnavailable(c, err.Error())
	}
	return c.JSON(fiber.Map{"status": "ok", "todos": store.Len()})
}
