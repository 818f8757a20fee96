package api

import (
	"net/http"

	"swapcli/internal/pkg/logger"
	"swapcli/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// authTransport attaches an Authorization header read from the persisted
// session blob. The blob is re-read on every request so a login or logout in
// the same process (or another one) takes effect immediately. A missing or
// malformed blob never blocks the request: it proceeds unauthenticated and the
// parse failure is logged.
type authTransport struct {
	sessionPath string
	log         *logger.Logger
	next        http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("X-Request-ID", uuid.NewString())

	state, err := session.Load(t.sessionPath)
	if err != nil {
		t.log.Error("failed to parse session state", zap.Error(err))
	} else if state.User != nil && state.User.Token != "" {
		r.Header.Set("Authorization", "Bearer "+state.User.Token)
	}

	return t.next.RoundTrip(r)
}
