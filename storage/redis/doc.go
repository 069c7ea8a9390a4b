// Package redis provides a Redis-backed session.Storage backend for
// deployments where session state is shared across processes.
//
// Connection establishment validates the Redis URL, retries transient
// failures, and verifies connectivity with a ping before returning a client:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	backend := redis.New(client, redis.WithKeyPrefix(cfg.KeyPrefix))
//	sessions := session.New(backend)
//
// Values carry the fixed session lifetime as their Redis TTL, keeping
// server-side eviction aligned with the store's expiry timer.
package redis
