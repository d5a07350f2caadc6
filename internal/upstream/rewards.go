package upstream

import (
	"context"

	"salesdash-backend/internal/models"
)

func (c *Client) FetchRewards(ctx context.Context) ([]models.Reward, error) {
	var rewards []models.Reward
	if err := c.get(ctx, "/api/rewards", &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

func (c *Client) AddReward(ctx context.Context, req models.RewardRequest) (*models.Reward, error) {
	var created models.Reward
	if err := c.post(ctx, "/api/rewards", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateReward(ctx context.Context, id string, req models.RewardRequest) error {
	return c.put(ctx, "/api/rewards/update/"+id, req, nil)
}

func (c *Client) DeleteReward(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/rewards/"+id)
}

func (c *Client) FetchRedemptions(ctx context.Context) ([]models.Redemption, error) {
	var resp models.RedemptionListResponse
	if err := c.get(ctx, "/api/redeem", &resp); err != nil {
		return nil, err
	}
	return resp.RedemptionRequests, nil
}

func (c *Client) ApproveRedemption(ctx context.Context, id string) error {
	return c.patch(ctx, "/api/redeem/approve/"+id, nil, nil)
}

func (c *Client) RejectRedemption(ctx context.Context, id string) error {
	return c.patch(ctx, "/api/redeem/reject/"+id, nil, nil)
}

func (c *Client) RewardReport(ctx context.Context) (*models.RewardReport, error) {
	var report models.RewardReport
	if err := c.get(ctx, "/api/redeem/reports", &report); err != nil {
		return nil, err
	}
	return &report, nil
}
