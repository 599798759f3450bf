package query

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/themenu/client"
	"github.com/ray-remotestate/themenu/models"
)

func TestOwnerRetryPolicy(t *testing.T) {
	unauthorized := &client.APIError{Status: http.StatusUnauthorized}
	notFound := &client.APIError{Status: http.StatusNotFound}
	serverErr := &client.APIError{Status: http.StatusInternalServerError}
	plain := errors.New("connection refused")

	assert.False(t, ownerRetry(0, unauthorized))
	assert.False(t, ownerRetry(0, notFound))

	assert.True(t, ownerRetry(0, serverErr))
	assert.True(t, ownerRetry(1, serverErr))
	assert.False(t, ownerRetry(2, serverErr), "at most two retries")

	assert.True(t, ownerRetry(0, plain))
}

func TestStaleCopyServedWhenRefetchFails(t *testing.T) {
	var calls atomic.Int64
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, models.User{ID: "u1"})
	}))
	t.Cleanup(server.Close)

	tokens := &tokenValue{value: "tok"}
	c := NewClient(client.New(server.URL, tokens, 0), tokens)

	ctx := context.Background()
	user, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)

	// age the entry past its stale window but inside max age
	c.cache.now = func() time.Time { return time.Now().Add(time.Minute) }
	fail.Store(true)

	user, err = c.CurrentUser(ctx)
	require.NoError(t, err, "stale copy must cover a failed refetch")
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, int64(2), calls.Load(), "the refetch was attempted")
}

func TestExpiredEntrySurfacesTheError(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, models.User{ID: "u1"})
	}))
	t.Cleanup(server.Close)

	tokens := &tokenValue{value: "tok"}
	c := NewClient(client.New(server.URL, tokens, 0), tokens)

	ctx := context.Background()
	_, err := c.CurrentUser(ctx)
	require.NoError(t, err)

	// past max age there is no fallback left
	c.cache.now = func() time.Time { return time.Now().Add(time.Hour) }
	fail.Store(true)

	_, err = c.CurrentUser(ctx)
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusInternalServerError))
}
