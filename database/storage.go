package database

import (
	"errors"

	"github.com/sahilchouksey/todo-warp-api/model"
)

var ErrTodoNotFound = errors.New("todo not found")

// Storage defines the interface that all todo stores must satisfy
type Storage interface {
	HealthCheck() error

	// List returns a snapshot of every item, ordered by id.
	List() []model.TodoItem
	// Insert stores item under a freshly assigned id and returns the stored copy.
	// Any id set on item is ignored.
	Insert(item model.TodoItem) model.TodoItem
	// Modify runs fn on the item with the given id while holding the store lock.
	// fn must not change the item's id.
	Modify(id uint32, fn func(item *model.TodoItem)) (model.TodoItem, error)
	// DeleteCompleted removes completed items and renumbers the rest 1..N.
	DeleteCompleted() int
	Len() int
}
