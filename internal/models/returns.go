package models

// NameRef is a populated reference carrying only the display name.
type NameRef struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// Return is a product return raised by a salesman, awaiting admin action.
type Return struct {
	ID       string  `json:"_id"`
	Salesman NameRef `json:"salesman"`
	Client   NameRef `json:"client"`
	Product  NameRef `json:"product"`
	Quantity int     `json:"quantity"`
	Reason   string  `json:"reason"`
	Status   string  `json:"status"`
}

// ReturnListResponse wraps GET /api/return.
type ReturnListResponse struct {
	Returns []Return `json:"returns"`
}
