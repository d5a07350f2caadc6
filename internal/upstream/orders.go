package upstream

import (
	"context"

	"salesdash-backend/internal/models"
)

func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/api/order", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) EditOrder(ctx context.Context, id string, req models.EditOrderRequest) (*models.Order, error) {
	var updated models.Order
	if err := c.put(ctx, "/api/order/editOrder/"+id, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/order/"+id)
}
