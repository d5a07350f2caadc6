package upstream

import (
	"context"
	"fmt"

	"salesdash-backend/internal/models"
)

// Login authenticates the admin against the upstream and returns the
// issued bearer credential. The only unauthenticated operation.
func (c *Client) Login(ctx context.Context, name, password string) (string, error) {
	var resp models.LoginResponse
	err := c.post(ctx, "/auth/admin/login", models.LoginRequest{Name: name, Password: password}, &resp)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: upstream returned no token")
	}
	return resp.Token, nil
}
