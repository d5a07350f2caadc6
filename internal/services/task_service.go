package services

import (
	"context"
	"fmt"
	"sync"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"
)

// TaskService manages the task assignment page and the read-only
// attendance log.
type TaskService struct {
	mu    sync.RWMutex
	API   *upstream.Client
	tasks []models.Task
}

// NewTaskService creates a new task service
func NewTaskService(api *upstream.Client) *TaskService {
	return &TaskService{API: api}
}

func (s *TaskService) Refresh(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.API.FetchTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return tasks, nil
}

func (s *TaskService) List() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Assign creates a task for a salesman and appends the saved record to
// the snapshot.
func (s *TaskService) Assign(ctx context.Context, req models.TaskRequest) (*models.Task, error) {
	created, err := s.API.AddTask(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, *created)
	s.mu.Unlock()
	return created, nil
}

// Attendance fetches the check-in log. It is read-only so no snapshot is
// kept.
func (s *TaskService) Attendance(ctx context.Context) ([]models.Attendance, error) {
	records, err := s.API.FetchAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch attendance: %w", err)
	}
	return records, nil
}
