package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/ledgermirror/internal/state"
)

// snapshotKey holds the latest encoded state as a single binary string.
var snapshotKey = key("snapshot")

// SaveState overwrites the stored snapshot. The key never expires.
func (c *client) SaveState(ctx context.Context, data []byte) error {
	return c.conn.Set(ctx, snapshotKey, data, 0).Err()
}

// LoadState returns the stored snapshot, or state.ErrSnapshotNotFound when
// none was saved yet.
func (c *client) LoadState(ctx context.Context) ([]byte, error) {
	data, err := c.conn.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = state.ErrSnapshotNotFound
		}

		return nil, err
	}

	return data, nil
}

var _ state.SnapshotStorage = (*client)(nil)
