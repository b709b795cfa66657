package registry

import (
	"sync"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/pkg/types"
)

// Book is the in-memory view of the registry consulted during ingestion.
//
// A pending deposit fires once: when the accounts store emits an action for
// it, Settle removes it from the Book and remembers the address until
// Service.CommitSettled deletes it from Storage. Replace never resurrects a
// settled deposit that is still waiting to be committed.
type Book struct {
	mu      sync.RWMutex
	tracked map[accounts.Address]accounts.Principal
	pending map[accounts.Address]PendingDeposit
	settled types.Set[accounts.Address]
}

// Ensure compile-time compliance with the accounts.AddressBook interface.
var _ accounts.AddressBook = (*Book)(nil)

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{
		tracked: make(map[accounts.Address]accounts.Principal),
		pending: make(map[accounts.Address]PendingDeposit),
		settled: types.NewSet[accounts.Address](),
	}
}

// Replace swaps the Book content for snapshot.
func (b *Book) Replace(snapshot Snapshot) {
	tracked := make(map[accounts.Address]accounts.Principal, len(snapshot.Tracked))
	for _, t := range snapshot.Tracked {
		tracked[t.Address] = t.Principal
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	pending := make(map[accounts.Address]PendingDeposit, len(snapshot.Pending))
	for _, p := range snapshot.Pending {
		if !b.settled.Has(p.Address) {
			pending[p.Address] = p
		}
	}

	b.tracked = tracked
	b.pending = pending
}

// Principal implements accounts.AddressBook.
func (b *Book) Principal(address accounts.Address) (accounts.Principal, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.tracked[address]
	return p, ok
}

// ResolvePending implements accounts.AddressBook.
func (b *Book) ResolvePending(address accounts.Address, memo accounts.Memo) (accounts.PendingAction, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	d, ok := b.pending[address]
	if !ok || !d.Matches(memo) {
		return accounts.PendingAction{}, false
	}

	return accounts.PendingAction{Principal: d.Principal, Kind: d.Kind}, true
}

// Settle marks the pending deposit at address as completed.
func (b *Book) Settle(address accounts.Address) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.pending[address]; !ok {
		return
	}

	delete(b.pending, address)
	b.settled.Add(address)
}

// TakeSettled returns and forgets the addresses settled since the last call, sorted.
func (b *Book) TakeSettled() []accounts.Address {
	b.mu.Lock()
	defer b.mu.Unlock()

	addresses := types.SortedSlice(b.settled)
	b.settled = types.NewSet[accounts.Address]()
	return addresses
}

func (b *Book) markSettled(address accounts.Address) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.settled.Add(address)
}

// Len returns the number of tracked addresses and pending deposits.
func (b *Book) Len() (tracked, pending int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.tracked), len(b.pending)
}
