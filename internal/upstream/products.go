package upstream

import (
	"context"

	"salesdash-backend/internal/models"
)

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var resp models.ProductListResponse
	if err := c.get(ctx, "/api/products", &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) AddProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	var created models.Product
	if err := c.post(ctx, "/api/products", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) EditProduct(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	var updated models.Product
	if err := c.put(ctx, "/api/products/"+id, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/products/"+id)
}
