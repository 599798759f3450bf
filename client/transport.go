package client

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TokenSource supplies the current session token. An empty string means
// anonymous; the transport sends the request through unauthenticated and
// leaves any resulting 401 to the caller.
type TokenSource interface {
	Token() string
}

// Transport injects the bearer token into every outbound request except the
// public restaurant listing. It also tags requests with an X-Request-ID so
// client and server logs can be correlated.
type Transport struct {
	Base   http.RoundTripper
	Tokens TokenSource
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("X-Request-ID", uuid.NewString())

	if !isPublic(out) && t.Tokens != nil {
		if token := strings.TrimSpace(t.Tokens.Token()); token != "" {
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logrus.WithFields(logrus.Fields{
		"method": out.Method,
		"path":   out.URL.Path,
	}).Debug("api request")

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(out)
}

// isPublic matches the restaurant listing exactly; /api/restaurants/:id and
// /api/restaurants/me share the prefix and must stay authenticated.
func isPublic(req *http.Request) bool {
	return req.Method == http.MethodGet && strings.TrimSuffix(req.URL.Path, "/") == endpointRestaurants
}
