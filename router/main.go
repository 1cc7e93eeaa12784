package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-warp-api/database"
	"github.com/sahilchouksey/todo-warp-api/handlers"
	todo_handlers "github.com/sahilchouksey/todo-warp-api/handlers/todo"
	"github.com/sahilchouksey/todo-warp-api/utils"
)

func SetupRoutes(app *fiber.App, store database.Storage, staticDir string) {
	todoHandler := todo_handlers.NewTodoHandler(store)

	// Browser client
	app.Get("/", handlers.HandleIndex)
	app.Static("/static", staticDir)

	// Health check endpoint
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	todos := app.Group("/todos")
	todos.Get("/", todoHandler.ListTodos)
	todos.Post("/", todoHandler.AddTodo)
	todos.Delete("/", todoHandler.DeleteCompletedTodos)
	todos.Patch("/:id", todoHandler.ToggleTodo)
	todos.Put("/:id", todoHandler.UpdateTodo)
}
