package upstream

import (
	"context"

	"salesdash-backend/internal/models"
)

func (c *Client) GeneralReport(ctx context.Context) (*models.PerformanceReport, error) {
	var report models.PerformanceReport
	if err := c.get(ctx, "/api/performance/dashboard", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) FetchLeaderboard(ctx context.Context) (*models.LeaderboardResponse, error) {
	var resp models.LeaderboardResponse
	if err := c.get(ctx, "/api/leaderboard", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
