package services

import (
	"context"
	"fmt"
	"sync"

	"salesdash-backend/internal/models"
	"salesdash-backend/internal/upstream"
)

// ClientService manages the customer accounts page.
type ClientService struct {
	mu      sync.RWMutex
	API     *upstream.Client
	clients []models.Client
}

// NewClientService creates a new client service
func NewClientService(api *upstream.Client) *ClientService {
	return &ClientService{API: api}
}

func (s *ClientService) Refresh(ctx context.Context) ([]models.Client, error) {
	clients, err := s.API.FetchClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch clients: %w", err)
	}
	s.mu.Lock()
	s.clients = clients
	s.mu.Unlock()
	return clients, nil
}

func (s *ClientService) List() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Create adds the account upstream and appends the saved record to the
// snapshot.
func (s *ClientService) Create(ctx context.Context, req models.ClientRequest) (*models.Client, error) {
	created, err := s.API.AddClient(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("add client: %w", err)
	}
	s.mu.Lock()
	s.clients = append(s.clients, *created)
	s.mu.Unlock()
	return created, nil
}

// Edit merges the saved record back into the snapshot.
func (s *ClientService) Edit(ctx context.Context, id string, req models.ClientRequest) (*models.Client, error) {
	updated, err := s.API.EditClient(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("edit client %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete drops the row from the snapshot once the upstream confirms.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.API.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}
	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
