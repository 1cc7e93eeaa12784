package database

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/sahilchouksey/todo-warp-api/model"
)

// MemoryStore keeps every todo in a map guarded by a single mutex.
// Ids stay dense: 1..Len() at all times.
type MemoryStore struct {
	mu     sync.Mutex
	todos  map[uint32]model.TodoItem
	nextID uint32
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos:  make(map[uint32]model.TodoItem),
		nextID: 1,
	}
}

func (s *MemoryStore) HealthCheck() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.todos == nil {
		return fmt.Errorf("memory store not initialized")
	}
	return nil
}

func (s *MemoryStore) List() []model.TodoItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked()
}

func (s *MemoryStore) Insert(item model.TodoItem) model.TodoItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID
	s.todos[item.ID] = item
	s.nextID++
	return item
}

func (s *MemoryStore) Modify(id uint32, fn func(item *model.TodoItem)) (model.TodoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.todos[id]
	if !ok {
		return model.TodoItem{}, fmt.Errorf("todo #%d: %w", id, ErrTodoNotFound)
	}

	fn(&item)
	item.ID = id
	s.todos[id] = item
	return item, nil
}

func (s *MemoryStore) DeleteCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	renumbered := make(map[uint32]model.TodoItem, len(s.todos))
	var nextID uint32 = 1
	for _, item := range s.sortedLocked() {
		if item.Completed {
			continue
		}
		item.ID = nextID
		renumbered[nextID] = item
		nextID++
	}

	removed := len(s.todos) - len(renumbered)
	s.todos = renumbered
	s.nextID = nextID
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.todos)
}

// caller must hold s.mu
func (s *MemoryStore) sortedLocked() []model.TodoItem {
	todos := make([]model.TodoItem, 0, len(s.todos))
	for _, item := range s.todos {
		todos = append(todos, item)
	}
	slices.SortFunc(todos, func(a, b model.TodoItem) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return todos
}
