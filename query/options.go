package query

import (
	"net/http"
	"time"

	"github.com/ray-remotestate/themenu/client"
)

const (
	defaultStaleTime = 30 * time.Second
	defaultMaxAge    = 5 * time.Minute
)

// RetryFunc decides whether a failed fetch should run again. attempt is
// zero-based: returning true on attempt 0 allows a second try.
type RetryFunc func(attempt int, err error) bool

// QueryOptions tune one query's caching and failure behavior.
type QueryOptions struct {
	// StaleTime is how long a cached result is served without refetching.
	StaleTime time.Duration
	// MaxAge is how long a result stays usable as a stale fallback.
	MaxAge time.Duration
	// Retry, when nil, means no retries.
	Retry RetryFunc
	// ForceFresh bypasses the cache read entirely (refetch-on-mount).
	ForceFresh bool
}

func defaultOptions() QueryOptions {
	return QueryOptions{StaleTime: defaultStaleTime, MaxAge: defaultMaxAge}
}

// ownerRetry is the restaurant-by-owner policy: a 401 means the session is
// dead and a 404 means there is legitimately no restaurant, so neither is
// worth repeating; anything else gets two more tries.
func ownerRetry(attempt int, err error) bool {
	if client.IsStatus(err, http.StatusUnauthorized) || client.IsStatus(err, http.StatusNotFound) {
		return false
	}
	return attempt < 2
}
