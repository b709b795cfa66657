package redis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/actions"
)

func TestClient_Publish(t *testing.T) {
	t.Run("should ignore an empty batch", func(t *testing.T) {
		c, server := newTestClient(t)

		require.NoError(t, c.Publish(t.Context(), nil))
		assert.False(t, server.Exists("ledgermirror:actions:queue"))
	})

	t.Run("should append the batch in order", func(t *testing.T) {
		c, server := newTestClient(t)
		batch := []actions.QueuedAction{
			{
				ID:          uuid.Must(uuid.NewV7()),
				Principal:   "p-1",
				BlockHeight: 10,
				Action:      accounts.Action{Kind: accounts.ActionKindStakeNeuron, From: "a", To: "n", Amount: 5},
				EnqueuedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:          uuid.Must(uuid.NewV7()),
				Principal:   "p-2",
				BlockHeight: 11,
				Action:      accounts.Action{Kind: accounts.ActionKindTopUpCanister, From: "b", To: "c", Amount: 7, Memo: 1},
				EnqueuedAt:  time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC),
			},
		}

		require.NoError(t, c.Publish(t.Context(), batch))
		require.NoError(t, c.Publish(t.Context(), batch[:1]))

		items, err := server.List("ledgermirror:actions:queue")
		require.NoError(t, err)
		require.Len(t, items, 3)

		var first actions.QueuedAction
		require.NoError(t, json.Unmarshal([]byte(items[0]), &first))
		assert.Equal(t, batch[0], first)

		var second actions.QueuedAction
		require.NoError(t, json.Unmarshal([]byte(items[1]), &second))
		assert.Equal(t, "p-2", second.Principal)
	})
}
