package redis

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/ledgermirror/internal/actions"
)

// actionsKey is a list of JSON encoded actions.QueuedAction, oldest first.
// Consumers pop from the head.
var actionsKey = key("actions", "queue")

// Publish appends the batch to the actions list with a single RPUSH, so a
// batch is either fully visible or not at all.
func (c *client) Publish(ctx context.Context, batch []actions.QueuedAction) error {
	if len(batch) == 0 {
		return nil
	}

	values := make([]any, 0, len(batch))
	for _, action := range batch {
		data, err := json.Marshal(action)
		if err != nil {
			return err
		}
		values = append(values, data)
	}

	return c.conn.RPush(ctx, actionsKey, values...).Err()
}

var _ actions.Publisher = (*client)(nil)
