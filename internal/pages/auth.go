package pages

import (
	"context"
	"fmt"
	"io"

	"swapcli/internal/models"
	"swapcli/internal/nav"
	"swapcli/internal/pkg/logger"
	"swapcli/internal/session"

	"go.uber.org/zap"
)

// LoginPage prompts for credentials and establishes a session through the
// session store. On success it replace-navigates to the catalog so back
// cannot return to the login screen.
type LoginPage struct {
	store *session.Store
	nav   *nav.Navigator
	log   *logger.Logger
	err   string
}

// NewLoginPage creates a login page backed by the given session store.
func NewLoginPage(store *session.Store, n *nav.Navigator, log *logger.Logger) *LoginPage {
	return &LoginPage{store: store, nav: n, log: log}
}

// Submit attempts a login. It reports success; failure is surfaced inline.
func (p *LoginPage) Submit(ctx context.Context, creds models.Credentials) bool {
	if _, err := p.store.Login(ctx, creds); err != nil {
		p.log.Warn("login failed", zap.Error(err))
		p.err = "Login failed"
		return false
	}
	p.err = ""
	p.nav.Replace("/items")
	return true
}

// Render writes the login prompt.
func (p *LoginPage) Render(w io.Writer) error {
	fmt.Fprintln(w, "Log in to continue")
	if p.err != "" {
		fmt.Fprintln(w, p.err)
	}
	_, err := fmt.Fprintln(w, "Use: swapcli login")
	return err
}

// RegisterPage prompts for a new account profile and establishes a session.
type RegisterPage struct {
	store *session.Store
	nav   *nav.Navigator
	log   *logger.Logger
	err   string
}

// NewRegisterPage creates a register page backed by the given session store.
func NewRegisterPage(store *session.Store, n *nav.Navigator, log *logger.Logger) *RegisterPage {
	return &RegisterPage{store: store, nav: n, log: log}
}

// Submit attempts a registration. It reports success; failure is surfaced inline.
func (p *RegisterPage) Submit(ctx context.Context, req models.RegisterRequest) bool {
	if _, err := p.store.Register(ctx, req); err != nil {
		p.log.Warn("registration failed", zap.Error(err))
		p.err = "Registration failed"
		return false
	}
	p.err = ""
	p.nav.Replace("/items")
	return true
}

// Render writes the registration prompt.
func (p *RegisterPage) Render(w io.Writer) error {
	fmt.Fprintln(w, "Create an account")
	if p.err != "" {
		fmt.Fprintln(w, p.err)
	}
	_, err := fmt.Fprintln(w, "Use: swapcli register")
	return err
}
