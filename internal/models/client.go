package models

// Client is a customer account managed through the dashboard.
type Client struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	Contact        string  `json:"contact"`
	Address        string  `json:"address"`
	Company        string  `json:"company,omitempty"`
	Email          string  `json:"email,omitempty"`
	OutstandingDue float64 `json:"outstandingDue"`
	OrdersPlaced   int     `json:"ordersPlaced"`
}

type ClientRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
}
