package upstream

import (
	"context"

	"salesdash-backend/internal/models"
)

func (c *Client) FetchSalesmen(ctx context.Context) ([]models.Salesman, error) {
	var resp models.SalesmanListResponse
	if err := c.get(ctx, "/api/user", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// EditSalesman updates a salesman and returns the upstream's view of the
// record after the edit.
func (c *Client) EditSalesman(ctx context.Context, id string, req models.EditSalesmanRequest) (*models.Salesman, error) {
	var updated models.Salesman
	if err := c.put(ctx, "/api/user/edit/"+id, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSalesman(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/user/delete/"+id)
}
