package pages

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"sync"

	"swapcli/internal/api"
	"swapcli/internal/models"
	"swapcli/internal/nav"
	"swapcli/internal/pkg/logger"

	"go.uber.org/zap"
)

// catalogErrMessage is the fixed user-facing message for a failed catalog fetch.
const catalogErrMessage = "Failed to fetch items"

// CatalogPage is the paginated, filterable item listing. The navigator's query
// string is the single source of truth for its parameters: Load parses them
// from the current location, and every filter or page change serializes them
// back before fetching, so a direct link reproduces the same fetch.
type CatalogPage struct {
	items api.ItemsAPI
	nav   *nav.Navigator
	log   *logger.Logger
	limit int

	mu     sync.Mutex
	seq    uint64
	status Status
	params models.ListParams
	page   *models.ItemPage
}

// NewCatalogPage creates a catalog page fetching limit items per page.
func NewCatalogPage(items api.ItemsAPI, n *nav.Navigator, limit int, log *logger.Logger) *CatalogPage {
	return &CatalogPage{items: items, nav: n, log: log, limit: limit}
}

// ParamsFromQuery derives catalog parameters from a location query string.
// Page defaults to 1 when absent or invalid; limit is fixed by configuration.
func ParamsFromQuery(query url.Values, limit int) models.ListParams {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return models.ListParams{
		Search: query.Get("search"),
		Type:   query.Get("type"),
		Page:   page,
		Limit:  limit,
	}
}

// Load fetches the page described by the current location's query string.
func (p *CatalogPage) Load(ctx context.Context) {
	p.fetch(ctx, ParamsFromQuery(p.nav.Location().Query, p.limit))
}

// NextPage advances to the next page when there is one, updating the query
// string and refetching.
func (p *CatalogPage) NextPage(ctx context.Context) {
	p.mu.Lock()
	params, page := p.params, p.page
	p.mu.Unlock()

	if page == nil || params.Page >= page.TotalPages {
		return
	}
	params.Page++
	p.apply(ctx, params)
}

// PrevPage retreats to the previous page when there is one, updating the query
// string and refetching.
func (p *CatalogPage) PrevPage(ctx context.Context) {
	p.mu.Lock()
	params := p.params
	p.mu.Unlock()

	if params.Page <= 1 {
		return
	}
	params.Page--
	p.apply(ctx, params)
}

// Search applies a search filter, resetting to the first page.
func (p *CatalogPage) Search(ctx context.Context, search string) {
	p.mu.Lock()
	params := p.params
	p.mu.Unlock()

	params.Search = search
	params.Page = 1
	p.apply(ctx, params)
}

// FilterType applies a type filter, resetting to the first page.
func (p *CatalogPage) FilterType(ctx context.Context, itemType string) {
	p.mu.Lock()
	params := p.params
	p.mu.Unlock()

	params.Type = itemType
	params.Page = 1
	p.apply(ctx, params)
}

// apply serializes params into the navigator's query string, then fetches.
func (p *CatalogPage) apply(ctx context.Context, params models.ListParams) {
	query := url.Values{}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Type != "" {
		query.Set("type", params.Type)
	}
	query.Set("page", strconv.Itoa(params.Page))
	p.nav.SetQuery(query)

	p.fetch(ctx, params)
}

// fetch loads one item page. A monotonic sequence number guards against a
// stale in-flight fetch overwriting state produced by a newer one: only the
// fetch holding the latest sequence may apply its result.
func (p *CatalogPage) fetch(ctx context.Context, params models.ListParams) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.status = StatusLoading
	p.params = params
	p.mu.Unlock()

	page, err := p.items.GetItems(ctx, params)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		// superseded by a newer fetch
		return
	}
	if err != nil {
		p.log.Error("failed to fetch items", zap.Error(err))
		p.status = StatusErrored
		p.page = nil
		return
	}
	p.status = StatusLoaded
	p.page = page
}

// Status returns the page's lifecycle state.
func (p *CatalogPage) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Params returns the parameters of the most recent fetch.
func (p *CatalogPage) Params() models.ListParams {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.params
}

// CurrentPage returns the loaded item page, or nil.
func (p *CatalogPage) CurrentPage() *models.ItemPage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Render writes the page's current state.
func (p *CatalogPage) Render(w io.Writer) error {
	p.mu.Lock()
	status, params, page := p.status, p.params, p.page
	p.mu.Unlock()

	switch status {
	case StatusLoading:
		_, err := fmt.Fprintln(w, "Loading items...")
		return err
	case StatusErrored:
		_, err := fmt.Fprintln(w, catalogErrMessage)
		return err
	case StatusLoaded:
		if len(page.Items) == 0 {
			fmt.Fprintln(w, "No items found")
		} else if err := writeItems(w, page.Items); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Page %d of %d (%d items)\n", params.Page, page.TotalPages, page.TotalItems)
		return err
	default:
		return nil
	}
}
