// Package guard restricts pages to authenticated sessions. The decision is a
// pure, synchronous function of whatever session state is currently resident;
// no network round trip happens at guard time.
package guard

import (
	"io"

	"swapcli/internal/nav"
	"swapcli/internal/session"
)

// Page is anything the application can render to its output.
type Page interface {
	Render(w io.Writer) error
}

// PageFunc constructs a page for the current location.
type PageFunc func() Page

// Sessions is the slice of the session store the guard reads.
type Sessions interface {
	GetState() session.State
}

// Protected wraps next so it only runs for an authenticated session. Without
// one, the navigator is redirected to /login with a history replace (so back
// cannot return to the guarded page) and nil is returned, telling the caller
// to dispatch the new location instead.
func Protected(sessions Sessions, n *nav.Navigator, next PageFunc) PageFunc {
	return func() Page {
		if sessions.GetState().User == nil {
			n.Replace("/login")
			return nil
		}
		return next()
	}
}
