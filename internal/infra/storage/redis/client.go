// Package redis implements the mirror's storage ports on top of Redis:
// the state snapshot, the address registry and the outbound action list.
//
// Every key lives under the "ledgermirror" namespace.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "ledgermirror"

// key joins parts under keyPrefix, e.g. key("registry", "tracked") is
// "ledgermirror:registry:tracked".
func key(parts ...string) string {
	k := keyPrefix
	for _, p := range parts {
		k = fmt.Sprintf("%s:%s", k, p)
	}
	return k
}

type client struct {
	conn *redis.Client
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return &client{
		conn: conn,
	}, nil
}
