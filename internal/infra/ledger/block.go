package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/ledgersync"
	"github.com/gabapcia/ledgermirror/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/ledgermirror/internal/pkg/types"
)

const (
	methodChainLength = "ledger_chainLength"
	methodQueryBlocks = "ledger_queryBlocks"
)

// ErrUnknownTransferKind is returned when a block carries a transfer the mirror cannot represent.
var ErrUnknownTransferKind = errors.New("unknown transfer kind")

type (
	// TransferResponse is the transfer carried by a block.
	//
	// Example:
	//
	//	{"kind":"send","from":"a1","to":"b2","amount":"0x5f5e100","fee":"0x2710"}
	TransferResponse struct {
		Kind   string    `json:"kind"`
		From   string    `json:"from,omitempty"`
		To     string    `json:"to,omitempty"`
		Amount types.Hex `json:"amount"`
		Fee    types.Hex `json:"fee,omitempty"`
	}

	// BlockResponse is one entry of the ledger_queryBlocks result.
	BlockResponse struct {
		Height    types.Hex        `json:"height"`
		Timestamp types.Hex        `json:"timestamp"`
		Memo      types.Hex        `json:"memo,omitempty"`
		Transfer  TransferResponse `json:"transfer"`
	}
)

// toTransfer converts the response into an accounts.Transfer.
func (t TransferResponse) toTransfer() (accounts.Transfer, error) {
	switch t.Kind {
	case "burn":
		return accounts.Burn(t.From, t.Amount.Uint64()), nil
	case "mint":
		return accounts.Mint(t.To, t.Amount.Uint64()), nil
	case "send":
		return accounts.Send(t.From, t.To, t.Amount.Uint64(), t.Fee.Uint64()), nil
	default:
		return accounts.Transfer{}, fmt.Errorf("%w: %q", ErrUnknownTransferKind, t.Kind)
	}
}

// toBlock converts the response into a ledgersync.Block.
func (b BlockResponse) toBlock() (ledgersync.Block, error) {
	transfer, err := b.Transfer.toTransfer()
	if err != nil {
		return ledgersync.Block{}, fmt.Errorf("block %d: %w", b.Height.Uint64(), err)
	}

	return ledgersync.Block{
		Height:    b.Height.Uint64(),
		Transfer:  transfer,
		Memo:      b.Memo.Uint64(),
		Timestamp: b.Timestamp.Uint64(),
	}, nil
}

// ChainLength returns the number of blocks in the ledger.
func (c *client) ChainLength(ctx context.Context) (uint64, error) {
	length, err := jsonrpc.Call[types.Hex](ctx, c.conn, methodChainLength)
	if err != nil {
		return 0, err
	}

	return length.Uint64(), nil
}

// QueryBlocks returns up to length blocks starting at start, in height order.
func (c *client) QueryBlocks(ctx context.Context, start, length uint64) ([]ledgersync.Block, error) {
	data, err := jsonrpc.Call[[]BlockResponse](ctx, c.conn, methodQueryBlocks,
		types.HexFromUint64(start),
		types.HexFromUint64(length),
	)
	if err != nil {
		return nil, err
	}

	blocks := make([]ledgersync.Block, 0, len(data))
	for _, response := range data {
		block, err := response.toBlock()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}
