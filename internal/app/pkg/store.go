package pkg

import (
	"context"
	"fmt"
	"time"

	"starfleet/internal/app/config"
	"starfleet/internal/app/dsn"
	"starfleet/internal/app/handler"
	"starfleet/internal/app/repository"
	"starfleet/internal/app/utils"

	"github.com/sirupsen/logrus"
)

const redisConnectTimeout = 15 * time.Second

// OpenStore builds the ship store the config asks for: postgres or memory,
// behind a redis cache when a redis endpoint is configured. It also
// returns a health check per backing service.
func OpenStore(conf *config.Config) (repository.Store, map[string]handler.HealthCheck, error) {
	checks := map[string]handler.HealthCheck{}

	var store repository.Store
	switch conf.Storage {
	case config.StorageMemory:
		logrus.Warn("using in-memory storage, ships are lost on restart")
		store = repository.NewMemoryStore()
	default:
		rep, err := repository.New(dsn.FromEnv())
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		checks["postgres"] = func(context.Context) error { return rep.Ping() }
		store = rep
	}

	if conf.RedisEndpoint == "" {
		return store, checks, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	client, err := utils.ConnectRedis(ctx, conf.RedisEndpoint, conf.RedisPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("open redis: %w", err)
	}
	checks["redis"] = utils.RedisHealthcheck(client)
	return repository.NewCachedStore(store, client, conf.CacheTTL), checks, nil
}
