package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"swapcli/internal/models"
	"swapcli/internal/pkg/logger"
)

// Client speaks the marketplace REST API. It implements ItemsAPI, SwapsAPI,
// and session.AuthAPI.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a Client for the backend at baseURL. sessionPath locates
// the persisted session blob the auth transport reads its bearer token from.
func NewClient(baseURL, sessionPath string, l *logger.Logger) *Client {
	jar, _ := cookiejar.New(nil)

	transport := l.RoundTripper(&authTransport{
		sessionPath: sessionPath,
		log:         l,
		next:        http.DefaultTransport,
	})

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Transport: transport},
		log:     l,
	}
}

// GetItems fetches one page of the item catalog.
func (c *Client) GetItems(ctx context.Context, params models.ListParams) (*models.ItemPage, error) {
	query := url.Values{}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Type != "" {
		query.Set("type", params.Type)
	}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("limit", strconv.Itoa(params.Limit))

	var page models.ItemPage
	if err := c.do(ctx, http.MethodGet, "/items?"+query.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetItem fetches a single item by id.
func (c *Client) GetItem(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodGet, "/items/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetMyItems fetches the items owned by the authenticated user.
func (c *Client) GetMyItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items/mine", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem lists a new item on behalf of the authenticated user.
func (c *Client) CreateItem(ctx context.Context, req models.NewItemRequest) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodPost, "/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateSwap submits a swap request.
func (c *Client) CreateSwap(ctx context.Context, req models.SwapRequest) (*models.SwapResponse, error) {
	var resp models.SwapResponse
	if err := c.do(ctx, http.MethodPost, "/swaps", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a user profile carrying a session token.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates an account and returns the resulting session profile.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// do performs one API request. A non-2xx response is decoded from the error
// envelope into an *Error; a 2xx response body is decoded into out when out is
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope models.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &Error{Status: resp.StatusCode, Message: envelope.Errors}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}
