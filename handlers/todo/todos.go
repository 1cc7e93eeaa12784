package todo

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sahilchouksey/todo-warp-api/database"
	"github.com/sahilchouksey/todo-warp-api/model"
	"github.com/sahilchouksey/todo-warp-api/utils/response"
	"github.com/sahilchouksey/todo-warp-api/utils/validation"
)

// TodoHandler handles todo-related requests
type TodoHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(store database.Storage) *TodoHandler {
	return &TodoHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// CreateTodoRequest represents the request body for creating a todo.
// ID is accepted for wire compatibility and ignored.
type CreateTodoRequest struct {
	ID        *uint32        `json:"id"`
	Title     string         `json:"title"`
	Completed bool           `json:"completed"`
	Priority  model.Priority `json:"priority" validate:"required,oneof=Low Medium High"`
}

// UpdateTodoRequest represents the request body for editing a todo
type UpdateTodoRequest struct {
	Title    string         `json:"title"`
	Priority model.Priority `json:"priority" validate:"required,oneof=Low Medium High"`
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, h.store.List())
}

// AddTodo handles POST /todos
func (h *TodoHandler) AddTodo(c *fiber.Ctx) error {
	var req CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.Summary(err))
	}

	h.store.Insert(model.TodoItem{
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
	})

	return response.Text(c, fiber.StatusCreated, "Todo added")
}

// ToggleTodo handles PATCH /todos/:id
func (h *TodoHandler) ToggleTodo(c *fiber.Ctx) error {
	id, err := parseTodoID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid todo ID")
	}

	_, err = h.store.Modify(id, func(item *model.TodoItem) {
		item.Completed = !item.Completed
	})
	if errors.Is(err, database.ErrTodoNotFound) {
		return response.Text(c, fiber.StatusNotFound, "Todo not found")
	}
	if err != nil {
		return err
	}

	return response.Text(c, fiber.StatusOK, "Todo toggled")
}

// UpdateTodo handles PUT /todos/:id. Editing always clears completed.
func (h *TodoHandler) UpdateTodo(c *fiber.Ctx) error {
	id, err := parseTodoID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid todo ID")
	}

	var req UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.Summary(err))
	}

	_, err = h.store.Modify(id, func(item *model.TodoItem) {
		item.Title = req.Title
		item.Priority = req.Priority
		item.Completed = false
	})
	if errors.Is(err, database.ErrTodoNotFound) {
		return response.Text(c, fiber.StatusNotFound, "Todo not found")
	}
	if err != nil {
		return err
	}

	return response.Text(c, fiber.StatusOK, "Todo updated")
}

// DeleteCompletedTodos handles DELETE /todos
func (h *TodoHandler) DeleteCompletedTodos(c *fiber.Ctx) error {
	if removed := h.store.DeleteCompleted(); removed > 0 {
		log.Infof("removed %d completed todos", removed)
	}
	return response.NoContent(c)
}

func parseTodoID(c *fiber.Ctx) (uint32, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}
