package services

import (
	"context"
	"fmt"
	"sync"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"
)

// ProductService manages the product catalog page.
type ProductService struct {
	mu       sync.RWMutex
	API      *upstream.Client
	products []models.Product
}

// NewProductService creates a new product service
func NewProductService(api *upstream.Client) *ProductService {
	return &ProductService{API: api}
}

func (s *ProductService) Refresh(ctx context.Context) ([]models.Product, error) {
	products, err := s.API.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return products, nil
}

func (s *ProductService) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the catalog row for one product.
func (s *ProductService) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	created, err := s.API.AddProduct(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	s.mu.Lock()
	s.products = append(s.products, *created)
	s.mu.Unlock()
	return created, nil
}

func (s *ProductService) Edit(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	updated, err := s.API.EditProduct(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("edit product %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.API.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
