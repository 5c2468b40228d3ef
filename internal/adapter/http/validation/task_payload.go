package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dueDateLayout = "2006-01-02"

// ParseBody decodes a JSON body both into its typed request and into a raw
// field map, so callers can tell an absent field apart from an explicit null.
func ParseBody(body []byte, req any) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(body, req); err != nil {
		return nil, ErrInvalidTaskPayload
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, ErrInvalidTaskPayload
	}

	return raw, nil
}

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if !hasJSONField(raw, "text") {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	priority := domain.PriorityNone
	if req.Priority != nil {
		priority = *req.Priority
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Text:      req.Text,
		Completed: completed,
		DueDate:   dueDate,
		Priority:  priority,
		Category:  req.Category,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	// Text may not be null: present means a replacement value.
	if hasJSONField(raw, "text") && req.Text == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "dueDate")
	if dueDateSet && !isJSONNull(raw["dueDate"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	categorySet := hasJSONField(raw, "category")
	if categorySet && !isJSONNull(raw["category"]) && req.Category == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var text *string
	if req.Text != nil {
		value := strings.TrimSpace(*req.Text)
		text = &value
	}

	return domain.UpdateTaskInput{
		Text:        text,
		Completed:   req.Completed,
		DueDate:     dueDate,
		DueDateSet:  dueDateSet,
		Priority:    req.Priority,
		Category:    req.Category,
		CategorySet: categorySet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "text") ||
		hasJSONField(raw, "completed") ||
		hasJSONField(raw, "dueDate") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "category")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
