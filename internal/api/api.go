// Package api implements the HTTP client for the marketplace backend.
// Every outgoing request passes through a single transport chain that injects
// the bearer token from the persisted session and logs the exchange; cookies
// are always included via the client's jar.
package api

import (
	"context"
	"errors"
	"fmt"

	"swapcli/internal/models"
)

// ItemsAPI covers the catalog endpoints.
type ItemsAPI interface {
	GetItems(ctx context.Context, params models.ListParams) (*models.ItemPage, error)
	GetItem(ctx context.Context, id string) (*models.Item, error)
	GetMyItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, req models.NewItemRequest) (*models.Item, error)
}

// SwapsAPI covers swap submission.
type SwapsAPI interface {
	CreateSwap(ctx context.Context, req models.SwapRequest) (*models.SwapResponse, error)
}

// Error is a backend-reported failure, decoded from the {"errors": ...} envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
