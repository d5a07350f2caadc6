package models

// OrderStatus values accepted by the upstream.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderProductRef is the populated product reference inside an order line.
type OrderProductRef struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderLine is one product line of an order as the upstream returns it.
type OrderLine struct {
	Product  OrderProductRef `json:"productId"`
	Quantity int             `json:"quantity"`
}

// OrderClientRef is the populated client reference on an order.
type OrderClientRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Order struct {
	ID          string         `json:"_id"`
	Client      OrderClientRef `json:"clientId"`
	Products    []OrderLine    `json:"products"`
	TotalAmount float64        `json:"totalAmount"`
	Status      string         `json:"status"`
	CreatedAt   string         `json:"createdAt,omitempty"`
}

// EditOrderLine is a line as submitted back on edit: flat product id plus
// the unit price looked up from the catalog at edit time.
type EditOrderLine struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price,omitempty"`
}

// EditOrderRequest carries an order update. TotalAmount is always the
// recomputed sum of price x quantity, never user input.
type EditOrderRequest struct {
	ClientID    string          `json:"clientId,omitempty"`
	Products    []EditOrderLine `json:"products"`
	TotalAmount float64         `json:"totalAmount"`
	Status      string          `json:"status,omitempty"`
}
