// Package actions buffers the multi-part follow-up actions emitted while
// ingesting ledger blocks and forwards them to an external Publisher.
//
// Ingestion enqueues from inside the accounts store's critical section, so
// the Queue only appends to memory. A Forwarder later drains it and publishes
// outside of any lock.
package actions

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gabapcia/ledgermirror/internal/accounts"
)

// QueuedAction is an action waiting to be published, stamped with the data
// needed by downstream consumers to process it exactly once.
type QueuedAction struct {
	ID          uuid.UUID            `json:"id"`
	Principal   accounts.Principal   `json:"principal"`
	BlockHeight accounts.BlockHeight `json:"block_height"`
	Action      accounts.Action      `json:"action"`
	EnqueuedAt  time.Time            `json:"enqueued_at"`
}

// Queue is an unbounded FIFO of actions. It is safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	items []QueuedAction
	now   func() time.Time
}

var _ accounts.ActionSink = (*Queue)(nil)

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Enqueue implements accounts.ActionSink. Each action gets a time-ordered
// UUIDv7 so consumers can deduplicate redeliveries.
func (q *Queue) Enqueue(principal accounts.Principal, blockHeight accounts.BlockHeight, action accounts.Action) {
	item := QueuedAction{
		ID:          uuid.Must(uuid.NewV7()),
		Principal:   principal,
		BlockHeight: blockHeight,
		Action:      action,
		EnqueuedAt:  q.now().UTC(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, item)
}

// Drain removes and returns every queued action in FIFO order.
func (q *Queue) Drain() []QueuedAction {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

// Requeue puts a batch back at the front of the queue, ahead of anything
// enqueued since it was drained.
func (q *Queue) Requeue(batch []QueuedAction) {
	if len(batch) == 0 {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = slices.Concat(batch, q.items)
}

// Len returns the number of queued actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
