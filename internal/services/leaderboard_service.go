package services

import (
	"context"
	"fmt"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"
	"salesdash-backend/internal/view"
)

// RankedSalesman is a leaderboard row with its standing attached. Rank is
// the position in the points-ordered listing the upstream returns.
type RankedSalesman struct {
	Rank   int    `json:"rank"`
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Points int    `json:"points"`
}

// LeaderboardPage is the ranked listing plus its paging envelope.
type LeaderboardPage struct {
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	TotalUsers  int              `json:"totalUsers"`
	Standings   []RankedSalesman `json:"standings"`
}

// LeaderboardService presents the reward-points leaderboard and its CSV
// export.
type LeaderboardService struct {
	API *upstream.Client
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(api *upstream.Client) *LeaderboardService {
	return &LeaderboardService{API: api}
}

// Fetch returns the ranked standings.
func (s *LeaderboardService) Fetch(ctx context.Context) (*LeaderboardPage, error) {
	resp, err := s.API.FetchLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}
	return rankPage(resp), nil
}

func rankPage(resp *models.LeaderboardResponse) *LeaderboardPage {
	page := &LeaderboardPage{
		CurrentPage: resp.CurrentPage,
		TotalPages:  resp.TotalPages,
		TotalUsers:  resp.TotalUsers,
		Standings:   make([]RankedSalesman, 0, len(resp.Leaderboard)),
	}
	for i, sm := range resp.Leaderboard {
		page.Standings = append(page.Standings, RankedSalesman{
			Rank:   i + 1,
			ID:     sm.ID,
			Name:   sm.Name,
			Email:  sm.Email,
			Points: sm.Points,
		})
	}
	return page
}

// ExportCSV renders the standings as a Name,Points CSV.
func (s *LeaderboardService) ExportCSV(ctx context.Context) ([]byte, error) {
	page, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := view.RowsFrom(page.Standings)
	if err != nil {
		return nil, err
	}
	table := view.Table{
		Title:   "Leaderboard",
		Columns: []string{"Name", "Points"},
	}
	return []byte(table.CSV(rows)), nil
}
