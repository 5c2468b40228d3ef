package dto

type TaskItem struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	Owner     string  `json:"owner"`
	CreatedAt string  `json:"createdAt"`
	DueDate   *string `json:"dueDate,omitempty"`
	Priority  int     `json:"priority"`
	Category  *string `json:"category,omitempty"`
}

type CreateTaskRequest struct {
	Text      string  `json:"text"`
	Completed *bool   `json:"completed"`
	DueDate   *string `json:"dueDate"`
	Priority  *int    `json:"priority"`
	Category  *string `json:"category"`
}

type UpdateTaskRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
	DueDate   *string `json:"dueDate"`
	Priority  *int    `json:"priority"`
	Category  *string `json:"category"`
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
}
