package sessionrepo

import (
	"context"
	"time"

	"movecar/internal/domain/session"
	"movecar/internal/infra/kvstore"
)

// Cooldown rate-limits notifies with one expiring marker key per user.
// The marker is only ever removed by TTL expiry; there is no release path.
type Cooldown struct {
	store kvstore.Store
	ttl   time.Duration
}

func NewCooldown(store kvstore.Store, ttl time.Duration) *Cooldown {
	return &Cooldown{store: store, ttl: ttl}
}

func (c *Cooldown) InCooldown(ctx context.Context, user session.UserKey) (bool, error) {
	_, found, err := c.store.Get(ctx, storageKey(roleLock, user))
	if err != nil {
		return false, err
	}
	return found, nil
}

func (c *Cooldown) Arm(ctx context.Context, user session.UserKey) error {
	return c.store.Put(ctx, storageKey(roleLock, user), []byte("1"), c.ttl)
}
