package redis

import (
	"context"
	"net"
	"time"

	"frontdesk/config"
	"frontdesk/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New returns the cache client, or nil when no host is configured. An unreachable server is
// logged, not fatal: cache reads then miss and the desk keeps working from the local store.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	if primary.Host == constant.Empty {
		log.Info().Msg("Redis host not configured, caching disabled")

		return nil
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("host", primary.Host).Msg("Redis unreachable, caching disabled until it recovers")

		return client
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
