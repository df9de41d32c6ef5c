package redis

import (
	"context"
	"dailytodo/config"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New returns a client for the primary redis. The connection is only
// checked when the rate limiter is enabled, and a failed check is not fatal.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if !config.App.RateLimiter.Enable {
		return client
	}

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Warn().Err(err).Msg("Redis is unreachable, rate limiting is skipped until it recovers")

		return client
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
