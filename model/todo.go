package model

type Priority string

const (
	Low    Priority = "Low"
	Medium Priority = "Medium"
	High   Priority = "High"
)

// TodoItem is a single entry of the to-do list. ID is assigned by the store.
type TodoItem struct {
	ID        uint32   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
}
