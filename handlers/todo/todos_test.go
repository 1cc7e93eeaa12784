package todo

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todo-warp-api/database"
	"github.com/sahilchouksey/todo-warp-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *database.MemoryStore) {
	t.Helper()

	store := database.NewMemoryStore()
	h := NewTodoHandler(store)

	app := fiber.New()
	app.Get("/todos", h.ListTodos)
	app.Post("/todos", h.AddTodo)
	app.Delete("/todos", h.DeleteCompletedTodos)
	app.Patch("/todos/:id", h.ToggleTodo)
	app.Put("/todos/:id", h.UpdateTodo)
	return app, store
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestAddTodo(t *testing.T) {
	app, store := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/todos", `{"id":42,"title":"a","completed":false,"priority":"Low"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Todo added", body)

	todos := store.List()
	require.Len(t, todos, 1)
	assert.Equal(t, model.TodoItem{ID: 1, Title: "a", Completed: false, Priority: model.Low}, todos[0])
}

func TestAddTodoDefaultsCompletedToFalse(t *testing.T) {
	app, store := newTestApp(t)

	status, _ := do(t, app, http.MethodPost, "/todos", `{"title":"a","priority":"High"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.False(t, store.List()[0].Completed)
}

func TestAddTodoRejectsMalformedPayload(t *testing.T) {
	cases := map[string]struct {
		body   string
		status int
	}{
		"invalid json":     {`{"title":`, http.StatusBadRequest},
		"wrong field type": {`{"title":"a","completed":"yes","priority":"Low"}`, http.StatusBadRequest},
		"unknown priority": {`{"title":"a","priority":"Urgent"}`, http.StatusUnprocessableEntity},
		"missing priority": {`{"title":"a"}`, http.StatusUnprocessableEntity},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app, store := newTestApp(t)

			status, body := do(t, app, http.MethodPost, "/todos", tc.body)
			assert.Equal(t, tc.status, status)
			assert.Contains(t, body, `"success":false`)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestListTodos(t *testing.T) {
	app, store := newTestApp(t)

	status, body := do(t, app, http.MethodGet, "/todos", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	store.Insert(model.TodoItem{Title: "a", Priority: model.Low})
	store.Insert(model.TodoItem{Title: "b", Completed: true, Priority: model.High})

	status, body = do(t, app, http.MethodGet, "/todos", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[
		{"id":1,"title":"a","completed":false,"priority":"Low"},
		{"id":2,"title":"b","completed":true,"priority":"High"}
	]`, body)
}

func TestToggleTodo(t *testing.T) {
	app, store := newTestApp(t)
	store.Insert(model.TodoItem{Title: "a", Priority: model.Medium})

	// request bodies are ignored
	status, body := do(t, app, http.MethodPatch, "/todos/1", `{"completed":false}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Todo toggled", body)
	assert.Equal(t, model.TodoItem{ID: 1, Title: "a", Completed: true, Priority: model.Medium}, store.List()[0])

	status, _ = do(t, app, http.MethodPatch, "/todos/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, store.List()[0].Completed)
}

func TestToggleTodoNotFound(t *testing.T) {
	app, store := newTestApp(t)
	store.Insert(model.TodoItem{Title: "a", Priority: model.Low})
	before := store.List()

	status, body := do(t, app, http.MethodPatch, "/todos/9", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Todo not found", body)
	assert.Equal(t, before, store.List())
}

func TestToggleTodoInvalidID(t *testing.T) {
	app, _ := newTestApp(t)

	for _, id := range []string{"abc", "-1", "4294967296"} {
		status, _ := do(t, app, http.MethodPatch, "/todos/"+id, "")
		assert.Equal(t, http.StatusBadRequest, status, id)
	}
}

func TestUpdateTodoClearsCompleted(t *testing.T) {
	app, store := newTestApp(t)
	store.Insert(model.TodoItem{Title: "a", Completed: true, Priority: model.Low})

	status, body := do(t, app, http.MethodPut, "/todos/1", `{"id":1,"title":"a2","completed":true,"priority":"High"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Todo updated", body)
	assert.Equal(t, model.TodoItem{ID: 1, Title: "a2", Completed: false, Priority: model.High}, store.List()[0])
}

func TestUpdateTodoNotFound(t *testing.T) {
	app, store := newTestApp(t)

	status, body := do(t, app, http.MethodPut, "/todos/1", `{"title":"x","priority":"Low"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Todo not found", body)
	assert.Equal(t, 0, store.Len())
}

func TestUpdateTodoRejectsBadPriority(t *testing.T) {
	app, store := newTestApp(t)
	store.Insert(model.TodoItem{Title: "a", Priority: model.Low})

	status, body := do(t, app, http.MethodPut, "/todos/1", `{"title":"x","priority":"urgent"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Details string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "priority must be one of: Low, Medium, High", envelope.Error.Details)
	assert.Equal(t, "a", store.List()[0].Title)
}

func TestDeleteCompletedTodos(t *testing.T) {
	app, store := newTestApp(t)
	store.Insert(model.TodoItem{Title: "a", Completed: true, Priority: model.Low})
	store.Insert(model.TodoItem{Title: "b", Priority: model.High})

	status, body := do(t, app, http.MethodDelete, "/todos", "")
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)
	assert.Equal(t, []model.TodoItem{{ID: 1, Title: "b", Priority: model.High}}, store.List())

	// nothing left to delete
	status, _ = do(t, app, http.MethodDelete, "/todos", "")
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, 1, store.Len())
}
