package accounts

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeBook is a map-backed AddressBook.
type fakeBook struct {
	tracked map[Address]Principal
	pending map[Address]PendingAction
}

func newFakeBook() *fakeBook {
	return &fakeBook{
		tracked: make(map[Address]Principal),
		pending: make(map[Address]PendingAction),
	}
}

func (b *fakeBook) track(principal Principal, addresses ...Address) *fakeBook {
	for _, a := range addresses {
		b.tracked[a] = principal
	}
	return b
}

func (b *fakeBook) expect(address Address, action PendingAction) *fakeBook {
	b.pending[address] = action
	return b
}

func (b *fakeBook) Principal(address Address) (Principal, bool) {
	p, ok := b.tracked[address]
	return p, ok
}

func (b *fakeBook) ResolvePending(address Address, _ Memo) (PendingAction, bool) {
	p, ok := b.pending[address]
	return p, ok
}

type enqueuedAction struct {
	Principal   Principal
	BlockHeight BlockHeight
	Action      Action
}

// recordingSink collects every enqueued action.
type recordingSink struct {
	mu      sync.Mutex
	actions []enqueuedAction
}

func (s *recordingSink) Enqueue(principal Principal, height BlockHeight, action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions = append(s.actions, enqueuedAction{Principal: principal, BlockHeight: height, Action: action})
}

func (s *recordingSink) all() []enqueuedAction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]enqueuedAction(nil), s.actions...)
}

// fixedClock returns a clock frozen at the given unix second.
func fixedClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

// mustIngest ingests a block and fails the test on a height mismatch.
func mustIngest(t *testing.T, s *Store, transfer Transfer, height BlockHeight) bool {
	t.Helper()

	retained, err := s.Ingest(transfer, 0, height, height*1000)
	require.NoError(t, err)
	return retained
}

// seededStore returns a store tracking "alice" with one retained transaction
// per given height. Heights between them are ingested and discarded.
func seededStore(t *testing.T, heights ...BlockHeight) *Store {
	t.Helper()

	s := New(WithAddressBook(newFakeBook().track("p-alice", "alice")))
	if len(heights) == 0 {
		return s
	}

	require.NoError(t, s.InitSyncedUpTo(heights[0]-1))

	next := heights[0]
	for _, h := range heights {
		for ; next < h; next++ {
			mustIngest(t, s, Send("bob", "carol", 1, 0), next)
		}

		require.True(t, mustIngest(t, s, Send("bob", "alice", h, 1), h))
		next = h + 1
	}

	return s
}
