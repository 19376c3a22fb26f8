package application

import (
	"context"
	"time"

	"github.com/ezdiharweb/agency-api/clients/domain"
	"github.com/google/uuid"
)

// ClientService contains the business logic for client management
type ClientService struct {
	clientRepo domain.ClientRepository
}

// NewClientService creates a new ClientService instance
func NewClientService(clientRepo domain.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, client *domain.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()

	return s.clientRepo.Create(ctx, client)
}

// GetByID returns a client by its ID
func (s *ClientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// Update updates an existing client
func (s *ClientService) Update(ctx context.Context, client *domain.Client) error {
	client.UpdatedAt = time.Now()
	return s.clientRepo.Update(ctx, client)
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

// List returns clients matching the filter
func (s *ClientService) List(ctx context.Context, filter domain.ClientFilter) ([]*domain.Client, error) {
	return s.clientRepo.List(ctx, filter)
}

// Search finds clients by free text
func (s *ClientService) Search(ctx context.Context, query string) ([]*domain.Client, error) {
	return s.clientRepo.Search(ctx, query)
}
