package ports

import (
	"context"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/taskquery"
)

type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string, spec taskquery.Spec) ([]domain.Task, error)
	GetByID(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	DeleteByIDs(ctx context.Context, ownerID string, taskIDs []string) (int64, error)
	DeleteCompleted(ctx context.Context, ownerID string) (int64, error)
}

type TaskService interface {
	List(ctx context.Context, ownerID, filterToken, sortToken string) ([]domain.Task, error)
	Get(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleComplete(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	DeleteMany(ctx context.Context, ownerID string, taskIDs []string) (int64, error)
	ClearCompleted(ctx context.Context, ownerID string) (int64, error)
}
