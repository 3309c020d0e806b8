package utils

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrRedisNotReady      = errors.New("redis did not answer ping")
	ErrEmptyRedisEndpoint = errors.New("empty redis endpoint")
)

const (
	redisConnectAttempts = 3
	redisRetryInterval   = time.Second
)

// ConnectRedis opens a client and pings it, retrying a few times before
// giving up.
func ConnectRedis(ctx context.Context, endpoint, password string) (*redis.Client, error) {
	if endpoint == "" {
		return nil, ErrEmptyRedisEndpoint
	}

	var lastErr error
	for attempt := 1; attempt <= redisConnectAttempts; attempt++ {
		client := redis.NewClient(&redis.Options{
			Addr:     endpoint,
			Password: password,
			DB:       0,
		})
		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			logrus.Infof("redis connected at %s", endpoint)
			return client, nil
		}
		_ = client.Close()
		logrus.Warnf("redis ping attempt %d/%d failed: %v", attempt, redisConnectAttempts, lastErr)
		if attempt == redisConnectAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(redisRetryInterval):
		}
	}
	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// RedisHealthcheck returns a probe that pings the client.
func RedisHealthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrRedisNotReady, err)
		}
		return nil
	}
}
