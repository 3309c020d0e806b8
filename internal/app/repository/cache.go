package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"starfleet/internal/app/ds"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const shipKeyPrefix = "ship:"

// CachedStore is a read-through redis cache in front of another Store.
// Single ships are cached by id; listings and existence checks always go
// to the backing store. A redis failure is logged and the backing store
// answers instead.
type CachedStore struct {
	Store
	redis *redis.Client
	ttl   time.Duration
}

var _ Store = (*CachedStore)(nil)

func NewCachedStore(store Store, client *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{
		Store: store,
		redis: client,
		ttl:   ttl,
	}
}

func shipKey(id int64) string {
	return shipKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *CachedStore) FindByID(id int64) (ds.Ship, error) {
	ctx := context.Background()

	raw, err := c.redis.Get(ctx, shipKey(id)).Bytes()
	switch {
	case err == nil:
		var ship ds.Ship
		if err := json.Unmarshal(raw, &ship); err == nil {
			return ship, nil
		}
		logrus.Warnf("dropping unreadable cache entry %s", shipKey(id))
		c.forget(ctx, id)
	case !errors.Is(err, redis.Nil):
		logrus.Warnf("redis get %s: %v", shipKey(id), err)
	}

	ship, err := c.Store.FindByID(id)
	if err != nil {
		return ds.Ship{}, err
	}
	c.remember(ctx, ship)
	return ship, nil
}

// ExistsByID asks the backing store and drops the cached copy of a ship
// the store no longer has.
func (c *CachedStore) ExistsByID(id int64) (bool, error) {
	exists, err := c.Store.ExistsByID(id)
	if err != nil {
		return false, err
	}
	if !exists {
		c.forget(context.Background(), id)
	}
	return exists, nil
}

// Save evicts the cached copy before writing to the backing store.
func (c *CachedStore) Save(ship *ds.Ship) error {
	ctx := context.Background()
	if ship.ID != 0 {
		c.forget(ctx, ship.ID)
	}
	if err := c.Store.Save(ship); err != nil {
		return err
	}
	c.remember(ctx, *ship)
	return nil
}

func (c *CachedStore) DeleteByID(id int64) error {
	if err := c.Store.DeleteByID(id); err != nil {
		return err
	}
	c.forget(context.Background(), id)
	return nil
}

func (c *CachedStore) remember(ctx context.Context, ship ds.Ship) {
	raw, err := json.Marshal(ship)
	if err != nil {
		logrus.Warnf("encode ship %d for cache: %v", ship.ID, err)
		return
	}
	if err := c.redis.Set(ctx, shipKey(ship.ID), raw, c.ttl).Err(); err != nil {
		logrus.Warnf("redis set %s: %v", shipKey(ship.ID), err)
		c.forget(ctx, ship.ID)
	}
}

func (c *CachedStore) forget(ctx context.Context, id int64) {
	if err := c.redis.Del(ctx, shipKey(id)).Err(); err != nil {
		logrus.Warnf("redis del %s: %v", shipKey(id), err)
	}
}
