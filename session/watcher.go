package session

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Watcher polls the token for out-of-band changes, the equivalent of another
// browser tab rewriting the session. Detection is best-effort; two writers
// can still race between polls.
type Watcher struct {
	store    *Store
	interval time.Duration
	onChange func(token string)
}

func NewWatcher(store *Store, interval time.Duration, onChange func(token string)) *Watcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Watcher{store: store, interval: interval, onChange: onChange}
}

// Run blocks until ctx is cancelled, invoking onChange whenever the stored
// token differs from the last observed value.
func (w *Watcher) Run(ctx context.Context) {
	last := w.store.Token()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := w.store.Token()
			if current == last {
				continue
			}
			logrus.Debug("session token changed outside this process")
			last = current
			if w.onChange != nil {
				w.onChange(current)
			}
		}
	}
}
