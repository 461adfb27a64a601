package configs

import (
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

// Redis returns the shared client, or nil when REDIS_ADDR is unset. Callers
// treat a nil client as "cache disabled" and fall through to the database.
func Redis() *redis.Client {
	return rdb
}

func ConnectRedis(cfg *Config) {
	if cfg.RedisAddr == "" {
		return
	}
	rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}
