package upstream

import (
	"context"

	"salesdash-backend/internal/models"
)

func (c *Client) FetchClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := c.get(ctx, "/api/client", &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *Client) AddClient(ctx context.Context, req models.ClientRequest) (*models.Client, error) {
	var created models.Client
	if err := c.post(ctx, "/api/client", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) EditClient(ctx context.Context, id string, req models.ClientRequest) (*models.Client, error) {
	var updated models.Client
	if err := c.put(ctx, "/api/client/"+id, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/client/"+id)
}
