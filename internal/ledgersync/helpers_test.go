package ledgersync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	ledgersynctest "github.com/gabapcia/ledgermirror/internal/ledgersync/mocks"
	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
	"github.com/gabapcia/ledgermirror/internal/pkg/resilience/retry"
	"github.com/gabapcia/ledgermirror/internal/state"
)

func init() {
	_ = logger.Init("error")
}

// aliceBook tracks "alice" only.
type aliceBook struct{}

func (aliceBook) Principal(address accounts.Address) (accounts.Principal, bool) {
	return "p-alice", address == "alice"
}

func (aliceBook) ResolvePending(accounts.Address, accounts.Memo) (accounts.PendingAction, bool) {
	return accounts.PendingAction{}, false
}

// memSnapshots is an in-memory state.SnapshotStorage.
type memSnapshots struct {
	mu   sync.Mutex
	data []byte
}

func (m *memSnapshots) SaveState(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = data
	return nil
}

func (m *memSnapshots) LoadState(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, state.ErrSnapshotNotFound
	}
	return m.data, nil
}

// mints returns n consecutive mint blocks from start. Blocks whose height is
// in toAlice credit alice, the others credit bob.
func mints(start, n uint64, toAlice ...uint64) []Block {
	alice := make(map[uint64]bool, len(toAlice))
	for _, h := range toAlice {
		alice[h] = true
	}

	blocks := make([]Block, 0, n)
	for h := start; h < start+n; h++ {
		to := "bob"
		if alice[h] {
			to = "alice"
		}
		blocks = append(blocks, Block{
			Height:    h,
			Transfer:  accounts.Mint(to, 10),
			Timestamp: h * 1000,
		})
	}
	return blocks
}

type fixture struct {
	state     *state.State
	ledger    *LedgerMock
	registry  *ledgersynctest.Registry
	forwarder *ledgersynctest.Forwarder
	snapshots *memSnapshots
	reader    *sdkmetric.ManualReader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return &fixture{
		state:     state.New(accounts.New(accounts.WithAddressBook(aliceBook{}))),
		ledger:    NewLedgerMock(t),
		registry:  ledgersynctest.NewRegistry(t),
		forwarder: ledgersynctest.NewForwarder(t),
		snapshots: &memSnapshots{},
		reader:    sdkmetric.NewManualReader(),
	}
}

func (f *fixture) service(opts ...Option) *service {
	defaults := []Option{
		WithRetry(retry.New(retry.WithAttempts(1))),
		WithClock(func() time.Time { return time.Unix(1_700_000_000, 0) }),
		WithMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(f.reader))),
	}

	return New(f.state, f.ledger, f.registry, f.forwarder, f.snapshots, append(defaults, opts...)...)
}

func (f *fixture) counter(t *testing.T, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, f.reader.Collect(t.Context(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)

			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}

	return 0
}
