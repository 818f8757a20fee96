package guard

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapcli/internal/models"
	"swapcli/internal/nav"
	"swapcli/internal/session"
)

type stubSessions struct {
	state session.State
}

func (s stubSessions) GetState() session.State { return s.state }

type stubPage struct{}

func (stubPage) Render(io.Writer) error { return nil }

func TestProtectedRendersContentWhenUserPresent(t *testing.T) {
	sessions := stubSessions{state: session.State{User: &models.User{ID: "user-1"}}}
	n := nav.New("/dashboard")

	content := stubPage{}
	page := Protected(sessions, n, func() Page { return content })()

	assert.Equal(t, content, page)
	assert.Equal(t, "/dashboard", n.Location().Path)
	assert.Equal(t, 1, n.Depth())
}

func TestProtectedRedirectsToLoginWhenNoUser(t *testing.T) {
	sessions := stubSessions{state: session.State{User: nil}}
	n := nav.New("/items")
	n.Go("/dashboard")

	called := false
	page := Protected(sessions, n, func() Page {
		called = true
		return stubPage{}
	})()

	assert.Nil(t, page)
	assert.False(t, called)
	assert.Equal(t, "/login", n.Location().Path)

	// The redirect replaced the guarded entry, so back skips it.
	assert.Equal(t, 2, n.Depth())
	require.True(t, n.Back())
	assert.Equal(t, "/items", n.Location().Path)
}
