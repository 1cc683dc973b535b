package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// DashboardCacheStore caches per-user dashboard payloads in Redis.
type DashboardCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ usecasecontract.IDashboardCache = (*DashboardCacheStore)(nil)

func NewDashboardCacheStore(rdb *redis.Client) *DashboardCacheStore {
	return &DashboardCacheStore{
		rdb: rdb,
		ttl: 10 * time.Minute,
	}
}

func dashboardKey(userID string) string { return fmt.Sprintf("dashboard:user:%s", userID) }

func (c *DashboardCacheStore) GetDashboard(ctx context.Context, userID string) (*usecasecontract.DashboardPayload, bool, error) {
	b, err := c.rdb.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var payload usecasecontract.DashboardPayload
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, false, nil
	}
	return &payload, true, nil
}

func (c *DashboardCacheStore) SetDashboard(ctx context.Context, userID string, payload *usecasecontract.DashboardPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, dashboardKey(userID), data, c.ttl).Err()
}

func (c *DashboardCacheStore) InvalidateDashboard(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, dashboardKey(userID)).Err()
}
