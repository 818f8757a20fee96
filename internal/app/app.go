// Package app wires the session store, API client, navigator, and pages into
// the running client. It dispatches the current location to a page, applies
// the route guard to protected pages, and drives the interactive browse loop.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"swapcli/internal/api"
	"swapcli/internal/guard"
	"swapcli/internal/nav"
	"swapcli/internal/pages"
	"swapcli/internal/pkg/logger"
	"swapcli/internal/session"
)

// App holds the client's dependencies and the currently rendered page.
type App struct {
	store    *session.Store
	items    api.ItemsAPI
	swaps    api.SwapsAPI
	nav      *nav.Navigator
	log      *logger.Logger
	out      io.Writer
	pageSize int

	current  guard.Page
	lastPath string
}

// NewApp creates the application shell writing its pages to out.
func NewApp(store *session.Store, items api.ItemsAPI, swaps api.SwapsAPI, n *nav.Navigator, pageSize int, out io.Writer, log *logger.Logger) *App {
	return &App{store: store, items: items, swaps: swaps, nav: n, pageSize: pageSize, out: out, log: log}
}

// Notify prints a one-off notification.
func (a *App) Notify(message string) {
	fmt.Fprintln(a.out, message)
}

// Open navigates to target and renders the resulting page.
func (a *App) Open(ctx context.Context, target string) error {
	a.nav.Go(target)
	return a.Render(ctx)
}

// Current returns the page rendered by the last dispatch.
func (a *App) Current() guard.Page {
	return a.current
}

// Render dispatches the current location. Guard redirects change the location
// and dispatch again; the loop is bounded to catch route misconfiguration.
func (a *App) Render(ctx context.Context) error {
	const maxRedirects = 4
	for i := 0; i < maxRedirects; i++ {
		page := a.dispatch(ctx, a.nav.Location())
		if page == nil {
			continue
		}
		a.current = page
		a.lastPath = a.nav.Location().Path
		return page.Render(a.out)
	}
	return fmt.Errorf("app: redirect loop at %s", a.nav.Location().Path)
}

func (a *App) dispatch(ctx context.Context, loc nav.Location) guard.Page {
	switch {
	case loc.Path == "/login":
		return pages.NewLoginPage(a.store, a.nav, a.log)

	case loc.Path == "/register":
		return pages.NewRegisterPage(a.store, a.nav, a.log)

	case loc.Path == "/items":
		return guard.Protected(a.store, a.nav, func() guard.Page {
			page := pages.NewCatalogPage(a.items, a.nav, a.pageSize, a.log)
			page.Load(ctx)
			return page
		})()

	case loc.Path == "/dashboard":
		return guard.Protected(a.store, a.nav, func() guard.Page {
			page := pages.NewDashboardPage(a.store, a.items, a.log)
			page.Load(ctx)
			return page
		})()

	default:
		if params, ok := nav.Match("/items/{id}", loc.Path); ok {
			return guard.Protected(a.store, a.nav, func() guard.Page {
				page := pages.NewDetailPage(a.items, a.swaps, a.nav, a, a.log)
				page.Load(ctx, params["id"])
				return page
			})()
		}
		return notFoundPage{}
	}
}

// refresh re-renders after a command: a path change means the command
// navigated and the new location must be dispatched; otherwise the current
// page re-renders in place, preserving its state.
func (a *App) refresh(ctx context.Context) error {
	if a.nav.Location().Path != a.lastPath {
		return a.Render(ctx)
	}
	return a.current.Render(a.out)
}

// Run drives the interactive browse loop, reading commands from in until EOF
// or quit. It starts at the catalog.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	if err := a.Open(ctx, "/items"); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprint(a.out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(a.out, "> ")
			continue
		}
		cmd, args := fields[0], fields[1:]

		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := a.handle(ctx, cmd, args); err != nil {
			return err
		}
		fmt.Fprint(a.out, "> ")
	}
	return scanner.Err()
}

func (a *App) handle(ctx context.Context, cmd string, args []string) error {
	arg := strings.Join(args, " ")

	switch cmd {
	case "items":
		return a.Open(ctx, "/items")
	case "dashboard":
		return a.Open(ctx, "/dashboard")
	case "open":
		if arg == "" {
			fmt.Fprintln(a.out, "usage: open <item-id>")
			return nil
		}
		return a.Open(ctx, "/items/"+arg)
	case "back":
		if a.nav.Back() {
			return a.Render(ctx)
		}
		return nil
	case "next", "prev", "search", "type":
		return a.handleCatalog(ctx, cmd, arg)
	case "swap", "offer", "confirm", "cancel":
		return a.handleSwap(ctx, cmd, arg)
	case "help":
		fmt.Fprintln(a.out, "commands: items, open <id>, next, prev, search <text>, type <Free|Trade>, swap, offer <n|none>, confirm, cancel, dashboard, back, quit")
		return nil
	default:
		fmt.Fprintf(a.out, "unknown command %q (try help)\n", cmd)
		return nil
	}
}

func (a *App) handleCatalog(ctx context.Context, cmd, arg string) error {
	catalog, ok := a.current.(*pages.CatalogPage)
	if !ok {
		fmt.Fprintln(a.out, "not on the catalog (try: items)")
		return nil
	}

	switch cmd {
	case "next":
		catalog.NextPage(ctx)
	case "prev":
		catalog.PrevPage(ctx)
	case "search":
		catalog.Search(ctx, arg)
	case "type":
		catalog.FilterType(ctx, arg)
	}
	return a.refresh(ctx)
}

func (a *App) handleSwap(ctx context.Context, cmd, arg string) error {
	detail, ok := a.current.(*pages.DetailPage)
	if !ok {
		fmt.Fprintln(a.out, "not on an item page (try: open <id>)")
		return nil
	}

	switch cmd {
	case "swap":
		if err := detail.OpenSwapDialog(ctx); err != nil {
			fmt.Fprintln(a.out, "Failed to load your items")
			return nil
		}
	case "offer":
		if err := a.selectOffer(detail, arg); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return nil
		}
	case "confirm":
		if err := detail.ConfirmSwap(ctx); err != nil {
			fmt.Fprintln(a.out, err.Error())
			return nil
		}
	case "cancel":
		detail.CancelDialog()
	}
	return a.refresh(ctx)
}

// selectOffer resolves arg as "none", a 1-based choice number, or an item id.
func (a *App) selectOffer(detail *pages.DetailPage, arg string) error {
	if arg == "none" || arg == "0" {
		return detail.SelectNothing()
	}
	if n, err := strconv.Atoi(arg); err == nil {
		choices := detail.Choices()
		if n < 1 || n > len(choices) {
			return fmt.Errorf("no choice %d", n)
		}
		return detail.SelectOffer(choices[n-1].ID)
	}
	return detail.SelectOffer(arg)
}

type notFoundPage struct{}

func (notFoundPage) Render(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Page not found")
	return err
}
