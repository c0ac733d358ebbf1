package infra_catalog_cache

import (
	"time"

	"github.com/go-redis/redis"
)

// Driver backs the catalog client's cache port with redis.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Get(key string) ([]byte, bool) {
	fullKey := d.getFullKey(key)

	val, err := d.client.Get(fullKey).Bytes()
	if err != nil {
		// redis.Nil and transport errors both degrade to a cache miss.
		return nil, false
	}

	return val, true
}

func (d *Driver) Set(key string, value []byte, ttl time.Duration) {
	fullKey := d.getFullKey(key)
	_ = d.client.Set(fullKey, value, ttl).Err()
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
