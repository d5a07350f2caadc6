package upstream

import (
	"context"
	"net/url"

	"salesdash-backend/internal/models"
)

// FetchMessages returns the thread for a (sender, receiver) pair in
// whatever order the upstream stores it.
func (c *Client) FetchMessages(ctx context.Context, senderID, receiverID string) ([]models.Message, error) {
	q := url.Values{}
	q.Set("senderId", senderID)
	q.Set("receiverId", receiverID)

	var messages []models.Message
	if err := c.get(ctx, "/api/messages/getmsg?"+q.Encode(), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, req models.SendMessageRequest) (*models.Message, error) {
	var sent models.Message
	if err := c.post(ctx, "/api/messages/sendmsg", req, &sent); err != nil {
		return nil, err
	}
	return &sent, nil
}
