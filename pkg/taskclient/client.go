// Package taskclient is a Go client for the task API. Client wraps the HTTP
// endpoints; Store layers the view behavior on top: it caches the last
// server result, narrows it with a local substring search, and keeps a
// session-scoped manual ordering that the server never sees.
package taskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	DueDate   *string   `json:"dueDate,omitempty"`
	Priority  int       `json:"priority"`
	Category  *string   `json:"category,omitempty"`
}

type CreateTask struct {
	Text      string  `json:"text"`
	Completed *bool   `json:"completed,omitempty"`
	DueDate   *string `json:"dueDate,omitempty"`
	Priority  *int    `json:"priority,omitempty"`
	Category  *string `json:"category,omitempty"`
}

// UpdateTask carries only the fields to change. Clear* sends an explicit
// null so the server drops the stored value instead of ignoring the field.
type UpdateTask struct {
	Text          *string
	Completed     *bool
	DueDate       *string
	ClearDueDate  bool
	Priority      *int
	Category      *string
	ClearCategory bool
}

func (u UpdateTask) payload() map[string]any {
	fields := make(map[string]any)
	if u.Text != nil {
		fields["text"] = *u.Text
	}
	if u.Completed != nil {
		fields["completed"] = *u.Completed
	}
	if u.ClearDueDate {
		fields["dueDate"] = nil
	} else if u.DueDate != nil {
		fields["dueDate"] = *u.DueDate
	}
	if u.Priority != nil {
		fields["priority"] = *u.Priority
	}
	if u.ClearCategory {
		fields["category"] = nil
	} else if u.Category != nil {
		fields["category"] = *u.Category
	}
	return fields
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, typically after login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// List fetches the owner's tasks with the given filter and sort tokens.
// Empty tokens mean the server defaults (all, newest). The local search
// term is deliberately never part of this request.
func (c *Client) List(ctx context.Context, filter, sort string) ([]Task, error) {
	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}
	if sort != "" {
		query.Set("sort", sort)
	}

	path := "/api/tasks"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var tasks []Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Get(ctx context.Context, id string) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodGet, "/api/tasks/"+id, nil, &task)
	return task, err
}

func (c *Client) Create(ctx context.Context, input CreateTask) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", input, &task)
	return task, err
}

func (c *Client) Update(ctx context.Context, id string, input UpdateTask) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, input.payload(), &task)
	return task, err
}

func (c *Client) Toggle(ctx context.Context, id string) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPatch, "/api/tasks/"+id+"/toggle", nil, &task)
	return task, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope struct {
		Err struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if envelope.Err.Message != "" {
			apiErr.Message = envelope.Err.Message
		} else {
			apiErr.Message = envelope.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
