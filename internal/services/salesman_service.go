package services

import (
	"context"
	"fmt"
	"sync"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"
)

// SalesmanService manages the salesman directory page: the roster snapshot,
// edits, removals and the reward-point adjustments hanging off each row.
type SalesmanService struct {
	mu       sync.RWMutex
	API      *upstream.Client
	salesmen []models.Salesman
}

// NewSalesmanService creates a new salesman service
func NewSalesmanService(api *upstream.Client) *SalesmanService {
	return &SalesmanService{API: api}
}

// Refresh replaces the snapshot with a fresh roster from the upstream.
func (s *SalesmanService) Refresh(ctx context.Context) ([]models.Salesman, error) {
	salesmen, err := s.API.FetchSalesmen(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch salesmen: %w", err)
	}
	s.mu.Lock()
	s.salesmen = salesmen
	s.mu.Unlock()
	return salesmen, nil
}

// List returns the current snapshot without touching the upstream.
func (s *SalesmanService) List() []models.Salesman {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Salesman, len(s.salesmen))
	copy(out, s.salesmen)
	return out
}

// Get returns the snapshot row for one salesman.
func (s *SalesmanService) Get(id string) (models.Salesman, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sm := range s.salesmen {
		if sm.ID == id {
			return sm, true
		}
	}
	return models.Salesman{}, false
}

// Edit submits the update and merges the saved record back into the
// snapshot. Only the edited row changes; the roster is not refetched.
func (s *SalesmanService) Edit(ctx context.Context, id string, req models.EditSalesmanRequest) (*models.Salesman, error) {
	updated, err := s.API.EditSalesman(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("edit salesman %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.salesmen {
		if s.salesmen[i].ID == id {
			s.salesmen[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the salesman upstream and drops the row from the
// snapshot, so no stale row survives the call.
func (s *SalesmanService) Delete(ctx context.Context, id string) error {
	if err := s.API.DeleteSalesman(ctx, id); err != nil {
		return fmt.Errorf("delete salesman %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.salesmen {
		if s.salesmen[i].ID == id {
			s.salesmen = append(s.salesmen[:i], s.salesmen[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// AdjustPoints applies a reset or a signed delta to a salesman's reward
// points. Balances never go below zero; an over-large deduction clamps.
func (s *SalesmanService) AdjustPoints(ctx context.Context, id string, req models.AdjustPointsRequest) (*models.Salesman, error) {
	current, ok := s.Get(id)
	if !ok {
		refreshed, err := s.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		for _, sm := range refreshed {
			if sm.ID == id {
				current, ok = sm, true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("salesman %s: %w", id, upstream.ErrNotFound)
		}
	}

	points := 0
	if !req.Reset {
		points = current.Points + req.Adjust
		if points < 0 {
			points = 0
		}
	}

	return s.Edit(ctx, id, models.EditSalesmanRequest{Points: &points})
}
