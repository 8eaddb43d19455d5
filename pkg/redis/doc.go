// Package redis connects to Redis for state shared between customerdesk
// instances, currently the submission rate limit buckets.
//
//	if cfg.Redis.Enabled() {
//		client, err := redis.Connect(ctx, cfg.Redis)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//		store := ratelimiter.NewRedisStore(client)
//	}
//
// Healthcheck adapts a client to an httpserver readiness check.
package redis
