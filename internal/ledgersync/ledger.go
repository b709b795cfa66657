package ledgersync

import (
	"context"

	"github.com/gabapcia/ledgermirror/internal/accounts"
)

// Block is one entry of the remote ledger.
type Block struct {
	Height    accounts.BlockHeight
	Transfer  accounts.Transfer
	Memo      accounts.Memo
	Timestamp uint64 // nanoseconds since the epoch
}

// Ledger reads blocks from the remote ledger.
type Ledger interface {
	// ChainLength returns the number of blocks in the ledger. Heights run
	// from 0 to ChainLength-1.
	ChainLength(ctx context.Context) (uint64, error)

	// QueryBlocks returns up to length consecutive blocks starting at start,
	// ordered by height. It may return fewer blocks than requested.
	QueryBlocks(ctx context.Context, start, length uint64) ([]Block, error)
}

// Registry keeps the address book consulted during ingestion up to date.
type Registry interface {
	Refresh(ctx context.Context) error
	CommitSettled(ctx context.Context) error
}

// Forwarder publishes the actions queued during ingestion.
type Forwarder interface {
	Forward(ctx context.Context) (int, error)
}

// Settler is told when a pending deposit produced its action.
type Settler interface {
	Settle(address accounts.Address)
}

// settlingSink forwards actions to a sink and settles the pending deposit
// that produced them, so a deposit fires at most once.
type settlingSink struct {
	sink    accounts.ActionSink
	settler Settler
}

// NewSettlingSink returns an accounts.ActionSink that enqueues into sink and
// settles the action's destination address in settler.
func NewSettlingSink(sink accounts.ActionSink, settler Settler) accounts.ActionSink {
	return settlingSink{sink: sink, settler: settler}
}

func (s settlingSink) Enqueue(principal accounts.Principal, blockHeight accounts.BlockHeight, action accounts.Action) {
	s.sink.Enqueue(principal, blockHeight, action)
	s.settler.Settle(action.To)
}
