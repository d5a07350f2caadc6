package models

// Salesman is a field salesman as the upstream returns it. Points drive the
// reward leaderboard; they are adjusted here but never created here.
type Salesman struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int    `json:"points"`
}

// SalesmanListResponse wraps GET /api/user.
type SalesmanListResponse struct {
	Data []Salesman `json:"data"`
}

// EditSalesmanRequest carries the fields an edit may touch. Points uses a
// pointer so "leave unchanged" and "set to zero" stay distinct.
type EditSalesmanRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Points *int   `json:"points,omitempty"`
}

// AdjustPointsRequest is the dashboard-facing points operation: either a
// reset to zero or a signed delta applied to the current balance.
type AdjustPointsRequest struct {
	Reset  bool `json:"reset,omitempty"`
	Adjust int  `json:"adjust,omitempty"`
}
