// Package taskquery turns the filter and sort tokens accepted by the task
// listing API into a predicate, a total ordering, and the matching SQL
// fragments. It is the single place where filter/sort semantics live; the
// repository consumes the SQL side and in-memory callers consume the
// predicate side, so the two can never drift apart.
package taskquery

import (
	"sort"
	"strings"
	"time"

	"tasklist/internal/core/domain"
)

type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterToday
	FilterUpcoming
	FilterOverdue
)

type Sort int

const (
	SortNewest Sort = iota
	SortOldest
	SortPriority
	SortAZ
)

// ParseFilter maps a filter token to a Filter. Unknown tokens fall back to
// FilterAll on purpose; an unrecognized filter must not make a request fail.
func ParseFilter(token string) Filter {
	switch token {
	case "completed":
		return FilterCompleted
	case "today":
		return FilterToday
	case "upcoming":
		return FilterUpcoming
	case "overdue":
		return FilterOverdue
	default:
		return FilterAll
	}
}

// ParseSort maps a sort token to a Sort. Unknown tokens fall back to SortNewest.
func ParseSort(token string) Sort {
	switch token {
	case "oldest":
		return SortOldest
	case "priority":
		return SortPriority
	case "az":
		return SortAZ
	default:
		return SortNewest
	}
}

// Spec is an evaluated (filter, sort, now) triple. The day boundaries are
// fixed at construction so the same Spec always yields the same results.
type Spec struct {
	Filter Filter
	Sort   Sort

	dayStart time.Time
	dayEnd   time.Time
}

// NewSpec builds a Spec with "today" anchored to the calendar day of now,
// in now's location.
func NewSpec(filter Filter, sortBy Sort, now time.Time) Spec {
	year, month, day := now.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	return Spec{
		Filter:   filter,
		Sort:     sortBy,
		dayStart: dayStart,
		dayEnd:   dayStart.AddDate(0, 0, 1),
	}
}

// Matches reports whether the task passes the filter.
func (s Spec) Matches(t domain.Task) bool {
	switch s.Filter {
	case FilterCompleted:
		return t.Completed
	case FilterToday:
		// Due today, regardless of completion.
		return t.DueDate != nil && !t.DueDate.Before(s.dayStart) && t.DueDate.Before(s.dayEnd)
	case FilterUpcoming:
		return t.DueDate != nil && !t.DueDate.Before(s.dayEnd) && !t.Completed
	case FilterOverdue:
		return t.DueDate != nil && t.DueDate.Before(s.dayStart) && !t.Completed
	default:
		return true
	}
}

// Less reports whether a sorts before b.
func (s Spec) Less(a, b domain.Task) bool {
	switch s.Sort {
	case SortOldest:
		return a.CreatedAt.Before(b.CreatedAt)
	case SortPriority:
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.CreatedAt.After(b.CreatedAt)
	case SortAZ:
		return strings.ToLower(a.Text) < strings.ToLower(b.Text)
	default:
		return a.CreatedAt.After(b.CreatedAt)
	}
}

// Apply filters and sorts tasks in memory, returning a new slice.
func (s Spec) Apply(tasks []domain.Task) []domain.Task {
	result := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if s.Matches(t) {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return s.Less(result[i], result[j]) })
	return result
}

// WhereClause returns the SQL restriction for the filter, without the
// leading AND, plus its arguments. An empty clause means no restriction.
func (s Spec) WhereClause() (string, []any) {
	switch s.Filter {
	case FilterCompleted:
		return "completed = TRUE", nil
	case FilterToday:
		return "due_date IS NOT NULL AND due_date >= ? AND due_date < ?", []any{s.dayStart, s.dayEnd}
	case FilterUpcoming:
		return "due_date IS NOT NULL AND due_date >= ? AND completed = FALSE", []any{s.dayEnd}
	case FilterOverdue:
		return "due_date IS NOT NULL AND due_date < ? AND completed = FALSE", []any{s.dayStart}
	default:
		return "", nil
	}
}

// OrderClause returns the SQL ORDER BY expression for the sort.
func (s Spec) OrderClause() string {
	switch s.Sort {
	case SortOldest:
		return "created_at ASC"
	case SortPriority:
		return "priority DESC, created_at DESC"
	case SortAZ:
		return "LOWER(text) ASC"
	default:
		return "created_at DESC"
	}
}
