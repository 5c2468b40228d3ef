package taskclient

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

// Concurrency cap for the bulk delete fan-out, roughly what a browser
// allows per host.
const bulkDeleteConcurrency = 4

var ErrReorderOutOfRange = errors.New("reorder index out of range")

// Store holds the most recent server result for one signed-in owner and
// derives the visible view from it. The server result is the base set:
// filter and sort are applied server-side, the search term narrows the
// cached set locally and is never sent over the wire.
type Store struct {
	mu     sync.Mutex
	client *Client

	state  State
	errMsg string

	tasks  []Task
	filter string
	sort   string
	search string
}

func NewStore(client *Client) *Store {
	return &Store{client: client, state: StateIdle}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the last failure message, verbatim from the server when it
// supplied one. Empty when the store is not in StateError.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Store) Sort() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// Refresh refetches the task list with the current filter and sort. On
// failure the previously cached tasks stay intact.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	filter, sortBy := s.filter, s.sort
	s.state = StateLoading
	s.mu.Unlock()

	tasks, err := s.client.List(ctx, filter, sortBy)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(err)
		return err
	}

	s.tasks = tasks
	s.succeed()
	return nil
}

// SetFilter changes the filter token and refetches when it differs.
func (s *Store) SetFilter(ctx context.Context, filter string) error {
	s.mu.Lock()
	if s.filter == filter {
		s.mu.Unlock()
		return nil
	}
	s.filter = filter
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// SetSort changes the sort token and refetches when it differs.
func (s *Store) SetSort(ctx context.Context, sortBy string) error {
	s.mu.Lock()
	if s.sort == sortBy {
		s.mu.Unlock()
		return nil
	}
	s.sort = sortBy
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// SetSearch updates the local search term. Purely local: no refetch.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

// Tasks returns a copy of the full cached set.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.tasks...)
}

// Visible returns the cached set narrowed by the search term, preserving
// the cached order. The cache itself is never mutated by searching.
func (s *Store) Visible() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.TrimSpace(strings.ToLower(s.search))
	if term == "" {
		return append([]Task(nil), s.tasks...)
	}

	visible := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Text), term) {
			visible = append(visible, t)
		}
	}
	return visible
}

// Add creates a task and prepends the server's version to the cache.
func (s *Store) Add(ctx context.Context, input CreateTask) (Task, error) {
	s.setLoading()

	task, err := s.client.Create(ctx, input)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(err)
		return Task{}, err
	}

	s.tasks = append([]Task{task}, s.tasks...)
	s.succeed()
	return task, nil
}

// Update edits a task and replaces the cached entry with the server's version.
func (s *Store) Update(ctx context.Context, id string, input UpdateTask) (Task, error) {
	s.setLoading()

	task, err := s.client.Update(ctx, id, input)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(err)
		return Task{}, err
	}

	s.replace(task)
	s.succeed()
	return task, nil
}

// Toggle flips a task's completion and reconciles with the server's version.
func (s *Store) Toggle(ctx context.Context, id string) (Task, error) {
	s.setLoading()

	task, err := s.client.Toggle(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(err)
		return Task{}, err
	}

	s.replace(task)
	s.succeed()
	return task, nil
}

// Remove deletes a task and drops it from the cache.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.setLoading()

	err := s.client.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.fail(err)
		return err
	}

	s.drop(id)
	s.succeed()
	return nil
}

// BulkResult reports the outcome of a bulk delete. Partial failure is not
// itself an error: deleted ids are gone regardless of the failed ones.
type BulkResult struct {
	Deleted []string
	Failed  map[string]error
}

// RemoveMany deletes the given ids as a bounded concurrent fan-out of
// individual DELETE calls. A 404 counts as already gone, not a failure.
func (s *Store) RemoveMany(ctx context.Context, ids []string) BulkResult {
	result := BulkResult{Failed: make(map[string]error)}
	if len(ids) == 0 {
		return result
	}

	s.setLoading()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkDeleteConcurrency)

	for _, id := range ids {
		g.Go(func() error {
			err := s.client.Delete(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil && !IsNotFound(err) {
				result.Failed[id] = err
				return nil
			}
			result.Deleted = append(result.Deleted, id)
			return nil
		})
	}

	// Workers never return errors; they record them per id instead.
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range result.Deleted {
		s.drop(id)
	}

	if len(result.Failed) > 0 {
		for _, err := range result.Failed {
			s.fail(err)
			break
		}
	} else {
		s.succeed()
	}

	return result
}

// Reorder moves the task at from to position to within the cached set.
// The new order is cosmetic and session-scoped: it is never sent to the
// server and the next Refresh discards it.
func (s *Store) Reorder(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from < 0 || from >= len(s.tasks) || to < 0 || to >= len(s.tasks) {
		return ErrReorderOutOfRange
	}
	if from == to {
		return nil
	}

	moved := s.tasks[from]
	s.tasks = append(s.tasks[:from], s.tasks[from+1:]...)

	rest := append([]Task(nil), s.tasks[to:]...)
	s.tasks = append(append(s.tasks[:to], moved), rest...)
	return nil
}

// Snapshot serializes the cached set, so callers can persist it across
// sessions the way the web client keeps localStorage. Opportunistic only:
// the server result always replaces it on the next Refresh.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.tasks)
}

// RestoreSnapshot loads a previously serialized cache. It leaves the state
// at idle; the caller is expected to Refresh soon after.
func (s *Store) RestoreSnapshot(data []byte) error {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	return nil
}

func (s *Store) setLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLoading
}

// fail and succeed expect s.mu to be held.
func (s *Store) fail(err error) {
	s.state = StateError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		s.errMsg = apiErr.Message
	} else {
		s.errMsg = err.Error()
	}
}

func (s *Store) succeed() {
	s.state = StateReady
	s.errMsg = ""
}

func (s *Store) replace(task Task) {
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return
		}
	}
}

func (s *Store) drop(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
