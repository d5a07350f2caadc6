package models

// Message is one entry of an admin-salesman thread. Order is whatever the
// upstream returns; there is no delivery receipt or ordering guarantee.
type Message struct {
	ID         string `json:"_id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
	CreatedAt  string `json:"createdAt"`
}

// SendMessageRequest tags the message with the sender-type discriminator
// the upstream uses to tell admin and salesman messages apart.
type SendMessageRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
	SenderType string `json:"senderType"`
}

// SenderTypeAdmin is the discriminator for messages sent from this dashboard.
const SenderTypeAdmin = "testadmin"
