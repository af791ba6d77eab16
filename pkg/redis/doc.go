// Package redis provides go-redis client helpers: URL-based connection with
// retry, an env-tag Config, a health check closure and graceful shutdown.
//
// In this module Redis backs shared rate-limit state (pkg/ratelimit.Redis);
// the cache layer itself is deliberately in-process only.
//
//	cfg, err := env.ParseAs[redis.Config]()
//	if err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	health.Register("redis", redis.Healthcheck(client))
//
// Open is a shorthand taking just a redis:// or rediss:// URL with default
// pool settings.
package redis
