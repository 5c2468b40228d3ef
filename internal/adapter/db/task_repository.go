package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/internal/core/taskquery"
)

const selectTaskColumns = `
SELECT id, text, completed, owner_id, created_at, due_date, priority, category
FROM tasks
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID        string         `db:"id"`
	Text      string         `db:"text"`
	Completed bool           `db:"completed"`
	OwnerID   string         `db:"owner_id"`
	CreatedAt time.Time      `db:"created_at"`
	DueDate   sql.NullTime   `db:"due_date"`
	Priority  int            `db:"priority"`
	Category  sql.NullString `db:"category"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByOwner returns the owner's tasks restricted and ordered by spec.
// Every query carries the owner-equality predicate; rows of other owners
// are unreachable through this repository.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string, spec taskquery.Spec) ([]domain.Task, error) {
	query := selectTaskColumns + "WHERE owner_id = ?"
	args := []any{ownerID}

	if where, whereArgs := spec.WhereClause(); where != "" {
		query += " AND " + where
		args = append(args, whereArgs...)
	}
	query += " ORDER BY " + spec.OrderClause()

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTaskColumns+"WHERE id = ? AND owner_id = ?", taskID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (id, text, completed, owner_id, created_at, due_date, priority, category)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		task.Text,
		task.Completed,
		task.OwnerID,
		task.CreatedAt,
		nullableTime(task.DueDate),
		task.Priority,
		nullableString(task.Category),
	)
	return err
}

// Update applies only the fields flagged as present in input and returns
// the resulting row. A missing or foreign-owned id reads back as
// ErrTaskNotFound.
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 7)

	if input.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *input.Text)
	}
	if input.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *input.Completed)
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableTime(input.DueDate))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *input.Priority)
	}
	if input.CategorySet {
		sets = append(sets, "category = ?")
		args = append(args, nullableString(input.Category))
	}

	if len(sets) > 0 {
		args = append(args, taskID, ownerID)
		query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ? AND owner_id = ?"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Task{}, err
		}
	}

	return r.GetByID(ctx, ownerID, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND owner_id = ?", taskID, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// DeleteByIDs removes every listed id owned by ownerID and reports how many
// rows went away. Unknown or foreign ids simply do not match.
func (r *TaskRepository) DeleteByIDs(ctx context.Context, ownerID string, taskIDs []string) (int64, error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In("DELETE FROM tasks WHERE owner_id = ? AND id IN (?)", ownerID, taskIDs)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *TaskRepository) DeleteCompleted(ctx context.Context, ownerID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE owner_id = ? AND completed = TRUE", ownerID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Text:      row.Text,
		Completed: row.Completed,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
		Priority:  row.Priority,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.Category.Valid {
		value := row.Category.String
		task.Category = &value
	}

	return task
}

func nullableTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
