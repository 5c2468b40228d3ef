package mapper

import (
	"time"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

const dueDateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		Owner:     task.OwnerID,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		Priority:  task.Priority,
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dueDateLayout)
		item.DueDate = &value
	}

	if task.Category != nil {
		value := *task.Category
		item.Category = &value
	}

	return item
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
