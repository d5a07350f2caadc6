package upstream

import (
	"context"

	"salesdash-backend/internal/models"
)

func (c *Client) FetchReturns(ctx context.Context) ([]models.Return, error) {
	var resp models.ReturnListResponse
	if err := c.get(ctx, "/api/return", &resp); err != nil {
		return nil, err
	}
	return resp.Returns, nil
}

// ApproveReturn and RejectReturn are state-changing GETs. That is the
// upstream's contract for returns, at odds with the PATCH used for
// redemptions; kept as observed.
func (c *Client) ApproveReturn(ctx context.Context, id string) error {
	return c.get(ctx, "/api/return/approve/"+id, nil)
}

func (c *Client) RejectReturn(ctx context.Context, id string) error {
	return c.get(ctx, "/api/return/reject/"+id, nil)
}
