package services

import (
	"context"
	"fmt"
	"sync"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"
	"salesdash-backend/internal/view"
)

// RewardService manages the rewards page: the reward catalog plus the
// redemption requests raised against it.
type RewardService struct {
	mu          sync.RWMutex
	API         *upstream.Client
	rewards     []models.Reward
	redemptions *view.ApprovalList
}

// NewRewardService creates a new reward service
func NewRewardService(api *upstream.Client) *RewardService {
	return &RewardService{API: api, redemptions: view.NewApprovalList()}
}

func (s *RewardService) Refresh(ctx context.Context) ([]models.Reward, error) {
	rewards, err := s.API.FetchRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch rewards: %w", err)
	}
	s.mu.Lock()
	s.rewards = rewards
	s.mu.Unlock()
	return rewards, nil
}

func (s *RewardService) List() []models.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reward, len(s.rewards))
	copy(out, s.rewards)
	return out
}

func (s *RewardService) Create(ctx context.Context, req models.RewardRequest) (*models.Reward, error) {
	created, err := s.API.AddReward(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("add reward: %w", err)
	}
	s.mu.Lock()
	s.rewards = append(s.rewards, *created)
	s.mu.Unlock()
	return created, nil
}

// Edit submits the update and patches the snapshot row in place. The
// upstream returns no body on reward updates, so the submitted fields are
// merged rather than a server record.
func (s *RewardService) Edit(ctx context.Context, id string, req models.RewardRequest) error {
	if err := s.API.UpdateReward(ctx, id, req); err != nil {
		return fmt.Errorf("update reward %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.rewards {
		if s.rewards[i].ID == id {
			s.rewards[i].RewardName = req.RewardName
			s.rewards[i].PointsRequired = req.PointsRequired
			s.rewards[i].QuantityAvailable = req.QuantityAvailable
			if req.RewardImageURL != "" {
				s.rewards[i].RewardImageURL = req.RewardImageURL
			}
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *RewardService) Delete(ctx context.Context, id string) error {
	if err := s.API.DeleteReward(ctx, id); err != nil {
		return fmt.Errorf("delete reward %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.rewards {
		if s.rewards[i].ID == id {
			s.rewards = append(s.rewards[:i], s.rewards[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// RefreshRedemptions loads the pending redemption requests.
func (s *RewardService) RefreshRedemptions(ctx context.Context) ([]view.Row, error) {
	redemptions, err := s.API.FetchRedemptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch redemptions: %w", err)
	}
	rows, err := view.RowsFrom(redemptions)
	if err != nil {
		return nil, err
	}
	s.redemptions.SetRows(rows)
	return rows, nil
}

func (s *RewardService) Redemptions() []view.Row {
	return s.redemptions.Rows()
}

// ApproveRedemption grants one request and patches only that row's status.
func (s *RewardService) ApproveRedemption(ctx context.Context, id string) error {
	return s.resolve(id, models.RedemptionApproved, func() error {
		return s.API.ApproveRedemption(ctx, id)
	})
}

// RejectRedemption declines one request.
func (s *RewardService) RejectRedemption(ctx context.Context, id string) error {
	return s.resolve(id, models.RedemptionRejected, func() error {
		return s.API.RejectRedemption(ctx, id)
	})
}

func (s *RewardService) resolve(id, status string, call func() error) error {
	if err := s.redemptions.Begin(id); err != nil {
		return err
	}
	if err := call(); err != nil {
		s.redemptions.Fail(id)
		return fmt.Errorf("redemption %s: %w", id, err)
	}
	s.redemptions.Resolve(id, status)
	return nil
}
