package domain

import "context"

// ClientFilter defines filtering criteria for listing clients
type ClientFilter struct {
	Search    string
	Limit     int
	Offset    int
	OrderBy   string
	OrderDesc bool
}

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id string) (*Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter ClientFilter) ([]*Client, error)
	Search(ctx context.Context, query string) ([]*Client, error)
}
