package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"swapcli/internal/api"
	"swapcli/internal/app"
	"swapcli/internal/config"
	"swapcli/internal/models"
	"swapcli/internal/nav"
	"swapcli/internal/pages"
	"swapcli/internal/pkg/logger"
	"swapcli/internal/session"

	"golang.org/x/term"
)

func main() {
	var l *logger.Logger
	var err error
	if l, err = logger.CreateLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, l); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, l *logger.Logger) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	client := api.NewClient(config.APIBaseURL, config.SessionFile, l)
	store := session.NewStore(config.SessionFile, client, l)
	prompts := &prompter{in: bufio.NewScanner(stdin), raw: stdin, out: stdout}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "login":
		return runLogin(ctx, rest, prompts, store, stdout, l)
	case "register":
		return runRegister(ctx, rest, prompts, store, stdout, l)
	case "logout":
		if err := store.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Logged out")
		return nil
	case "whoami":
		return runWhoami(store, stdout)
	case "items":
		return runItems(ctx, rest, store, client, stdout, l)
	case "item":
		return runItem(ctx, rest, store, client, stdout, l)
	case "swap":
		return runSwap(ctx, rest, store, client, stdout, l)
	case "list-item":
		return runListItem(ctx, rest, client, stdout)
	case "browse":
		n := nav.New("/items")
		a := app.NewApp(store, client, client, n, config.PageSize, stdout, l)
		return a.Run(ctx, stdin)
	case "help":
		usage(stdout)
		return nil
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swapcli <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  login               Log in and persist the session")
	fmt.Fprintln(w, "  register            Create an account and persist the session")
	fmt.Fprintln(w, "  logout              Clear the persisted session")
	fmt.Fprintln(w, "  whoami              Show the current session")
	fmt.Fprintln(w, "  items               Browse the item catalog")
	fmt.Fprintln(w, "  item <id>           Show one item")
	fmt.Fprintln(w, "  swap <id>           Request a swap for an item")
	fmt.Fprintln(w, "  list-item           List a new item of your own")
	fmt.Fprintln(w, "  browse              Interactive mode")
}

func runLogin(ctx context.Context, args []string, prompts *prompter, store *session.Store, stdout io.Writer, l *logger.Logger) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(stdout)
	email := fs.String("email", "", "Account email (prompted if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	creds := models.Credentials{Email: *email}
	var err error
	if creds.Email == "" {
		if creds.Email, err = prompts.line("Email: "); err != nil {
			return err
		}
	}
	if creds.Password, err = prompts.password("Password: "); err != nil {
		return err
	}

	n := nav.New("/login")
	page := pages.NewLoginPage(store, n, l)
	if !page.Submit(ctx, creds) {
		return errors.New("login failed")
	}
	state := store.GetState()
	fmt.Fprintf(stdout, "Logged in as %s (@%s)\n", state.User.Name, state.User.Username)
	return nil
}

func runRegister(ctx context.Context, args []string, prompts *prompter, store *session.Store, stdout io.Writer, l *logger.Logger) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(stdout)
	name := fs.String("name", "", "Display name (prompted if omitted)")
	username := fs.String("username", "", "Username (prompted if omitted)")
	email := fs.String("email", "", "Account email (prompted if omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.RegisterRequest{Name: *name, Username: *username, Email: *email}
	var err error
	if req.Name == "" {
		if req.Name, err = prompts.line("Name: "); err != nil {
			return err
		}
	}
	if req.Username == "" {
		if req.Username, err = prompts.line("Username: "); err != nil {
			return err
		}
	}
	if req.Email == "" {
		if req.Email, err = prompts.line("Email: "); err != nil {
			return err
		}
	}
	if req.Password, err = prompts.password("Password: "); err != nil {
		return err
	}
	if strings.TrimSpace(req.Password) == "" {
		return errors.New("password cannot be empty")
	}

	n := nav.New("/register")
	page := pages.NewRegisterPage(store, n, l)
	if !page.Submit(ctx, req) {
		return errors.New("registration failed")
	}
	state := store.GetState()
	fmt.Fprintf(stdout, "Welcome, %s (@%s)\n", state.User.Name, state.User.Username)
	return nil
}

func runWhoami(store *session.Store, stdout io.Writer) error {
	state := store.GetState()
	if state.User == nil {
		fmt.Fprintln(stdout, "Not logged in")
		return nil
	}
	fmt.Fprintf(stdout, "%s (@%s) <%s>\n", state.User.Name, state.User.Username, state.User.Email)
	if expiresAt, ok := store.TokenExpiresAt(); ok {
		if store.Expired() {
			fmt.Fprintf(stdout, "Session expired at %s, log in again\n", expiresAt.Format("2006-01-02 15:04"))
		} else {
			fmt.Fprintf(stdout, "Session valid until %s\n", expiresAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

func runItems(ctx context.Context, args []string, store *session.Store, client *api.Client, stdout io.Writer, l *logger.Logger) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(stdout)
	search := fs.String("search", "", "Search text")
	itemType := fs.String("type", "", "Item type filter (Free or Trade)")
	page := fs.Int("page", 1, "Page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := url.Values{}
	if *search != "" {
		query.Set("search", *search)
	}
	if *itemType != "" {
		query.Set("type", *itemType)
	}
	query.Set("page", strconv.Itoa(*page))

	n := nav.New(nav.Location{Path: "/items", Query: query}.String())
	a := app.NewApp(store, client, client, n, config.PageSize, stdout, l)
	return a.Render(ctx)
}

func runItem(ctx context.Context, args []string, store *session.Store, client *api.Client, stdout io.Writer, l *logger.Logger) error {
	if len(args) == 0 {
		return errors.New("usage: swapcli item <id>")
	}
	n := nav.New("/items/" + args[0])
	a := app.NewApp(store, client, client, n, config.PageSize, stdout, l)
	return a.Render(ctx)
}

func runSwap(ctx context.Context, args []string, store *session.Store, client *api.Client, stdout io.Writer, l *logger.Logger) error {
	fs := flag.NewFlagSet("swap", flag.ContinueOnError)
	fs.SetOutput(stdout)
	offer := fs.String("offer", "", "ID of your item to offer in exchange")
	nothing := fs.Bool("nothing", false, "Offer nothing (free items only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: swapcli swap <id> [-offer <item-id> | -nothing]")
	}

	n := nav.New("/items/" + fs.Arg(0))
	a := app.NewApp(store, client, client, n, config.PageSize, stdout, l)
	if err := a.Render(ctx); err != nil {
		return err
	}

	detail, ok := a.Current().(*pages.DetailPage)
	if !ok || detail.Item() == nil {
		// Redirected to login or the item failed to load; already rendered.
		return nil
	}

	if err := detail.OpenSwapDialog(ctx); err != nil {
		fmt.Fprintln(stdout, "Failed to load your items")
		return nil
	}
	if *nothing {
		if err := detail.SelectNothing(); err != nil {
			return err
		}
	} else if *offer != "" {
		if err := detail.SelectOffer(*offer); err != nil {
			return err
		}
	}

	if err := detail.ConfirmSwap(ctx); err != nil {
		return err
	}
	if msg := detail.DialogError(); msg != "" {
		fmt.Fprintln(stdout, msg)
		return nil
	}
	// Success navigated to the dashboard; render it.
	return a.Render(ctx)
}

func runListItem(ctx context.Context, args []string, client *api.Client, stdout io.Writer) error {
	fs := flag.NewFlagSet("list-item", flag.ContinueOnError)
	fs.SetOutput(stdout)
	name := fs.String("name", "", "Item name")
	description := fs.String("description", "", "Item description")
	category := fs.String("category", "", "Category ID")
	itemType := fs.String("type", string(models.ItemTypeTrade), "Item type (Free or Trade)")
	condition := fs.String("condition", "", "Item condition")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("missing required flag: name")
	}

	item, err := client.CreateItem(ctx, models.NewItemRequest{
		Name:        *name,
		Description: *description,
		CategoryID:  *category,
		Type:        models.ItemType(*itemType),
		Condition:   *condition,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Listed %s (%s)\n", item.Name, item.ID)
	return nil
}

// prompter reads interactive input, hiding passwords when stdin is a terminal.
type prompter struct {
	in  *bufio.Scanner
	raw io.Reader
	out io.Writer
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) password(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if f, ok := p.raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for non-terminal input (tests, pipes).
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}
