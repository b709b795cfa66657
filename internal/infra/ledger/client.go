// Package ledger implements ledgersync.Ledger for a remote ledger node that
// speaks JSON-RPC 2.0.
package ledger

import (
	"github.com/gabapcia/ledgermirror/internal/ledgersync"
	"github.com/gabapcia/ledgermirror/internal/pkg/transport/jsonrpc"
)

// client reads the ledger through a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

var _ ledgersync.Ledger = (*client)(nil)

// NewClient returns a ledger client using conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
