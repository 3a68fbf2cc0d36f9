package models

import (
	"fmt"
	"time"
)

// Task statuses accepted by the API.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID          string     `json:"id"`
	User        string     `json:"user"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// String renders a one-line summary used by the list command.
func (t Task) String() string {
	due := ""
	if t.DueDate != nil {
		due = " due " + t.DueDate.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s [%s] %s%s", t.ID, t.Status, t.Title, due)
}

// TaskInput is the body of POST /tasks and PUT /tasks/:id.
// DueDate uses the YYYY-MM-DD form and is omitted when empty.
type TaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	DueDate     string  `json:"dueDate,omitempty"`
}
