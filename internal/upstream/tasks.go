package upstream

import (
	"context"

	"salesdash-backend/internal/models"
)

func (c *Client) FetchTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.get(ctx, "/api/task", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) AddTask(ctx context.Context, req models.TaskRequest) (*models.Task, error) {
	var created models.Task
	if err := c.post(ctx, "/api/task", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) FetchAttendance(ctx context.Context) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := c.get(ctx, "/api/attendance", &records); err != nil {
		return nil, err
	}
	return records, nil
}
