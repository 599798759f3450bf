package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherSeesExternalTokenChange(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyToken, "old.token.value"))

	changed := make(chan string, 1)
	watcher := NewWatcher(store, 10*time.Millisecond, func(token string) {
		changed <- token
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	// another process rotates the token
	require.NoError(t, store.Set(KeyToken, "new.token.value"))

	select {
	case token := <-changed:
		require.Equal(t, "new.token.value", token)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never reported the token change")
	}
}
