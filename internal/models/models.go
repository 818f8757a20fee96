// Package models defines the data structures exchanged with the marketplace API.
// It includes the user and session shapes, catalog items and pages, swap request
// and response payloads, and the query parameters driving the item catalog.
package models

import "time"

// User represents the authenticated user profile returned by the auth endpoints.
// Token is the bearer credential attached to subsequent API requests.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the registration request payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse represents the API error envelope.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// ItemType classifies how a listed item can be acquired.
type ItemType string

const (
	// ItemTypeFree marks items that can be requested without offering anything in return.
	ItemTypeFree ItemType = "Free"
	// ItemTypeTrade marks items that require an item offered in exchange.
	ItemTypeTrade ItemType = "Trade"
)

// Category identifies the category an item is listed under.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Owner is the minimal profile of the user who listed an item.
type Owner struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Item is an immutable snapshot of a listed item as returned by the backend.
type Item struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Type        ItemType  `json:"type"`
	Owner       Owner     `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	Condition   string    `json:"condition"`
	Images      []string  `json:"images"`
	IsAvailable bool      `json:"isAvailable"`
}

// ItemPage is one page of catalog results. It is recomputed on every fetch
// and never cached across navigations.
type ItemPage struct {
	Items      []Item `json:"items"`
	TotalPages int    `json:"totalPages"`
	TotalItems int    `json:"totalItems"`
	Page       int    `json:"page"`
}

// ListParams are the catalog query parameters. Page is 1-based.
// Search and Type are omitted from the request when empty.
type ListParams struct {
	Search string
	Type   string
	Page   int
	Limit  int
}

// NewItemRequest is the payload for listing a new item.
type NewItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CategoryID  string   `json:"categoryId"`
	Type        ItemType `json:"type"`
	Condition   string   `json:"condition"`
	Images      []string `json:"images"`
}

// SwapRequest proposes exchanging InitiatorItemID for OwnerItemID.
// InitiatorItemID is null when the requester offers nothing, which the
// backend permits only for Free items.
type SwapRequest struct {
	OwnerItemID     string  `json:"ownerItemID"`
	InitiatorItemID *string `json:"initiatorItemID"`
}

// SwapResponse reports the outcome of a swap submission.
type SwapResponse struct {
	Success bool `json:"success"`
}
