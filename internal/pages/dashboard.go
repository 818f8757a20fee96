package pages

import (
	"context"
	"fmt"
	"io"

	"swapcli/internal/api"
	"swapcli/internal/models"
	"swapcli/internal/pkg/logger"
	"swapcli/internal/session"

	"go.uber.org/zap"
)

// DashboardPage greets the session user and lists their own items. It is the
// destination after a successful swap request.
type DashboardPage struct {
	store *session.Store
	items api.ItemsAPI
	log   *logger.Logger

	status Status
	mine   []models.Item
}

// NewDashboardPage creates a dashboard backed by the session store and items API.
func NewDashboardPage(store *session.Store, items api.ItemsAPI, log *logger.Logger) *DashboardPage {
	return &DashboardPage{store: store, items: items, log: log}
}

// Load fetches the viewer's own items.
func (p *DashboardPage) Load(ctx context.Context) {
	p.status = StatusLoading

	mine, err := p.items.GetMyItems(ctx)
	if err != nil {
		p.log.Error("failed to fetch own items", zap.Error(err))
		p.status = StatusErrored
		return
	}
	p.status = StatusLoaded
	p.mine = mine
}

// Render writes the dashboard.
func (p *DashboardPage) Render(w io.Writer) error {
	user := session.Select(p.store, func(s session.State) *models.User { return s.User })
	if user != nil {
		fmt.Fprintf(w, "Welcome back, %s!\n", user.Name)
	}
	if expiresAt, ok := p.store.TokenExpiresAt(); ok {
		fmt.Fprintf(w, "Session valid until %s\n", expiresAt.Format("2006-01-02 15:04"))
	}

	switch p.status {
	case StatusLoading:
		_, err := fmt.Fprintln(w, "Loading your items...")
		return err
	case StatusErrored:
		_, err := fmt.Fprintln(w, "Failed to fetch your items")
		return err
	case StatusLoaded:
		if len(p.mine) == 0 {
			_, err := fmt.Fprintln(w, "You have no listed items")
			return err
		}
		fmt.Fprintln(w, "Your items:")
		return writeItems(w, p.mine)
	default:
		return nil
	}
}
