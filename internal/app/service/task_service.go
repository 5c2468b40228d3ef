package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/internal/core/taskquery"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		now:            time.Now,
	}
}

func (s *TaskService) List(ctx context.Context, ownerID, filterToken, sortToken string) ([]domain.Task, error) {
	spec := taskquery.NewSpec(taskquery.ParseFilter(filterToken), taskquery.ParseSort(sortToken), s.now())
	return s.taskRepository.ListByOwner(ctx, ownerID, spec)
}

func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, ownerID, taskID)
}

func (s *TaskService) Create(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return domain.Task{}, domain.ErrTaskTextRequired
	}
	if input.Priority < domain.PriorityNone || input.Priority > domain.PriorityHigh {
		return domain.Task{}, domain.ErrPriorityOutOfRange
	}

	task := domain.Task{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: input.Completed,
		OwnerID:   ownerID,
		CreatedAt: s.now(),
		DueDate:   input.DueDate,
		Priority:  input.Priority,
		Category:  trimmedCategory(input.Category),
	}

	if err := s.taskRepository.Insert(ctx, task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text == "" {
			return domain.Task{}, domain.ErrTaskTextRequired
		}
		input.Text = &text
	}
	if input.Priority != nil && (*input.Priority < domain.PriorityNone || *input.Priority > domain.PriorityHigh) {
		return domain.Task{}, domain.ErrPriorityOutOfRange
	}
	if input.CategorySet {
		input.Category = trimmedCategory(input.Category)
	}

	return s.taskRepository.Update(ctx, ownerID, taskID, input)
}

func (s *TaskService) ToggleComplete(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	completed := !task.Completed
	return s.taskRepository.Update(ctx, ownerID, taskID, domain.UpdateTaskInput{Completed: &completed})
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	return s.taskRepository.Delete(ctx, ownerID, taskID)
}

// DeleteMany removes every listed task owned by ownerID. Ids that do not
// exist or belong to someone else are skipped, not errors.
func (s *TaskService) DeleteMany(ctx context.Context, ownerID string, taskIDs []string) (int64, error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}
	return s.taskRepository.DeleteByIDs(ctx, ownerID, taskIDs)
}

func (s *TaskService) ClearCompleted(ctx context.Context, ownerID string) (int64, error) {
	return s.taskRepository.DeleteCompleted(ctx, ownerID)
}

func trimmedCategory(category *string) *string {
	if category == nil {
		return nil
	}
	value := strings.TrimSpace(*category)
	if value == "" {
		return nil
	}
	return &value
}

var _ ports.TaskService = (*TaskService)(nil)
