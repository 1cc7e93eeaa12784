package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-warp-api/web"
)

// HandleIndex serves the embedded browser client page.
func HandleIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(web.IndexHTML)
}
