package domain

import "time"

// Task priorities. Zero means no priority has been assigned.
const (
	PriorityNone   = 0
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

type Task struct {
	ID        string
	Text      string
	Completed bool
	OwnerID   string
	CreatedAt time.Time
	DueDate   *time.Time
	Priority  int
	Category  *string
}

type CreateTaskInput struct {
	Text      string
	Completed bool
	DueDate   *time.Time
	Priority  int
	Category  *string
}

// UpdateTaskInput carries only the fields present in the request.
// A nil pointer without the matching Set flag means the field was absent;
// a Set flag with a nil pointer means the field was explicitly cleared.
type UpdateTaskInput struct {
	Text        *string
	Completed   *bool
	DueDate     *time.Time
	DueDateSet  bool
	Priority    *int
	Category    *string
	CategorySet bool
}
