package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fixserve/account-service/internal/core/domain"
	"github.com/fixserve/account-service/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// ProfileCache is a best-effort read-through cache for profile views backed
// by Redis. Key format: profile:<role>:<account_id>. Backend failures are
// logged and treated as misses; writes are fire-and-forget.
type ProfileCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewProfileCache(client *redis.Client, log zerolog.Logger) *ProfileCache {
	return &ProfileCache{client: client, log: log}
}

func (c *ProfileCache) Get(ctx context.Context, role domain.Role, accountID string) (*ports.ProfileView, bool) {
	raw, err := c.client.Get(ctx, c.key(role, accountID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("profile cache read failed")
		}
		return nil, false
	}

	var view ports.ProfileView
	if err := json.Unmarshal(raw, &view); err != nil {
		c.log.Warn().Err(err).Msg("profile cache entry corrupt")
		return nil, false
	}
	return &view, true
}

func (c *ProfileCache) Set(ctx context.Context, role domain.Role, accountID string, view *ports.ProfileView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(role, accountID), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("profile cache write failed")
	}
}

func (c *ProfileCache) Invalidate(ctx context.Context, role domain.Role, accountID string) {
	if err := c.client.Del(ctx, c.key(role, accountID)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("profile cache invalidation failed")
	}
}

func (c *ProfileCache) key(role domain.Role, accountID string) string {
	return fmt.Sprintf("profile:%s:%s", role, accountID)
}
