package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/slotworks/team-scheduler/internal/models"
)

const availabilityTTL = 5 * time.Minute

// AvailabilityCache keeps a contractor's weekly schedule in redis.
// Availability is read on every slot listing and written only when a
// contractor replaces their week, so a short TTL plus explicit
// invalidation on replace is enough. A nil cache is a no-op.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func key(userID uint) string {
	return fmt.Sprintf("availability:week:%d", userID)
}

func (c *AvailabilityCache) GetWeek(ctx context.Context, userID uint) ([]models.Availability, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(userID)).Bytes()
	if err != nil {
		return nil, false
	}

	var week []models.Availability
	if err := json.Unmarshal(raw, &week); err != nil {
		return nil, false
	}

	return week, true
}

func (c *AvailabilityCache) SetWeek(ctx context.Context, userID uint, week []models.Availability) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(week)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key(userID), raw, availabilityTTL)
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, userID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	c.rdb.Del(ctx, key(userID))
}
