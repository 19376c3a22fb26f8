package domain

import "errors"

var (
	// ErrClientNotFound is returned when no client matches the given ID
	ErrClientNotFound = errors.New("client not found")

	// ErrDuplicateClient is returned when creating a client that already exists
	ErrDuplicateClient = errors.New("client with this email already exists")
)
