package service

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PolicyWatcher keeps the PolicyService in sync with administrative
// toggles. It LISTENs on the 'policy_changes' channel (the flag repo
// NOTIFYs after every write) and also refreshes on a slow tick in case a
// notification is lost across a reconnect.
type PolicyWatcher struct {
	pool    *pgxpool.Pool
	policy  *PolicyService
	refresh time.Duration
}

func NewPolicyWatcher(pool *pgxpool.Pool, policy *PolicyService, refresh time.Duration) *PolicyWatcher {
	return &PolicyWatcher{pool: pool, policy: policy, refresh: refresh}
}

// Start runs the watch loop until the context is cancelled, reconnecting
// with backoff on listen errors.
func (w *PolicyWatcher) Start(ctx context.Context) {
	log.Printf("policy-watcher: starting (refresh=%s)", w.refresh)

	for {
		if err := w.listenLoop(ctx); err != nil {
			if ctx.Err() != nil {
				log.Println("policy-watcher: stopping (context cancelled)")
				return
			}
			log.Printf("policy-watcher: listen error, reconnecting in 5s: %v", err)
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				log.Println("policy-watcher: stopping (context cancelled)")
				return
			}
		}
	}
}

// listenLoop acquires a dedicated connection, LISTENs on policy_changes,
// and refreshes the policy on every notification or tick.
func (w *PolicyWatcher) listenLoop(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, "LISTEN policy_changes")
	if err != nil {
		return err
	}
	log.Println("policy-watcher: listening on policy_changes")

	tickCtx, tickCancel := context.WithCancel(ctx)
	defer tickCancel()
	go w.tickLoop(tickCtx)

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		w.policy.Refresh(ctx)
	}
}

func (w *PolicyWatcher) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(w.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.policy.Refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}
