package domain

import "time"

type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Todo struct {
	ID          int64
	FamilyID    int64
	Task        string
	Description string
	Done        bool
	DueDate     *time.Time // date+time, nil = no deadline
	AssignedTo  *int64     // member id
	Priority    Priority
	CreatedAt   time.Time
}

// HasDueDate returns true if the todo can appear on the agenda.
func (t *Todo) HasDueDate() bool {
	return t.DueDate != nil
}

func (t *Todo) PriorityLabel() string {
	switch t.Priority {
	case PriorityHigh:
		return "hoch"
	case PriorityMedium:
		return "mittel"
	case PriorityLow:
		return "niedrig"
	default:
		return ""
	}
}

// TodoComment is a comment on a todo.
type TodoComment struct {
	ID         int64
	TodoID     int64
	AuthorID   int64
	AuthorName string // resolved for display
	Text       string
	CreatedAt  time.Time
}
