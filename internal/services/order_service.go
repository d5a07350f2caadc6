package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"

	"github.com/shopspring/decimal"
)

// ErrUnknownProduct is returned when an order line references a product
// the catalog does not have, even after a refresh.
var ErrUnknownProduct = errors.New("unknown product in order line")

// OrderService manages the orders page. Orders are placed by salesmen in
// the field; the dashboard only edits, completes and removes them.
type OrderService struct {
	mu       sync.RWMutex
	API      *upstream.Client
	Products *ProductService
	orders   []models.Order
}

// NewOrderService creates a new order service
func NewOrderService(api *upstream.Client, products *ProductService) *OrderService {
	return &OrderService{API: api, Products: products}
}

func (s *OrderService) Refresh(ctx context.Context) ([]models.Order, error) {
	orders, err := s.API.FetchOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return orders, nil
}

func (s *OrderService) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get returns the snapshot row for one order.
func (s *OrderService) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Total computes an order value as the sum of unit price times quantity
// across all lines. Decimal arithmetic keeps currency sums exact.
func Total(lines []models.EditOrderLine) float64 {
	sum := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Price)
		qty := decimal.NewFromInt(int64(line.Quantity))
		sum = sum.Add(price.Mul(qty))
	}
	f, _ := sum.Float64()
	return f
}

// Edit recomputes the order total from its lines and submits the update,
// then merges the saved record back into the snapshot. The submitted
// total is never taken from the caller; missing line prices are filled
// from the product catalog first, and a line whose product the catalog
// cannot resolve fails the edit rather than pricing it at zero.
func (s *OrderService) Edit(ctx context.Context, id string, req models.EditOrderRequest) (*models.Order, error) {
	for i, line := range req.Products {
		if line.Price != 0 {
			continue
		}
		price, err := s.lookupPrice(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		req.Products[i].Price = price
	}
	req.TotalAmount = Total(req.Products)

	updated, err := s.API.EditOrder(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("edit order %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// lookupPrice resolves a line price from the catalog snapshot, refreshing
// it once on a miss so orders placed against products the admin never
// listed this session still price correctly.
func (s *OrderService) lookupPrice(ctx context.Context, productID string) (float64, error) {
	if s.Products == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	if p, ok := s.Products.Get(productID); ok {
		return p.Price, nil
	}
	if _, err := s.Products.Refresh(ctx); err != nil {
		return 0, fmt.Errorf("refresh products: %w", err)
	}
	if p, ok := s.Products.Get(productID); ok {
		return p.Price, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
}

// Delete drops the row from the snapshot once the upstream confirms.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.API.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
