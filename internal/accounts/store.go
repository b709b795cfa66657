// Package accounts mirrors a remote, append-only ledger into a bounded local
// window of transactions that touch tracked addresses.
//
// The Store ingests blocks in strict height order, classifies each transfer
// against an AddressBook, retains the relevant ones in a windowed log indexed
// by block height, and can be serialized with Encode and restored with Decode.
package accounts

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/ledgermirror/internal/pkg/types"
)

var (
	// ErrHeightMismatch is matched by every HeightMismatchError.
	ErrHeightMismatch = errors.New("block height mismatch")

	// ErrSyncedUpToAlreadySet is returned when InitSyncedUpTo is called on a
	// store that already has a watermark. It signals a wiring bug; callers
	// must not continue with an ambiguous sync position.
	ErrSyncedUpToAlreadySet = errors.New("synced up to block height is already initialized")
)

// HeightMismatchError is returned by Ingest when a block is offered out of sequence.
// The store is left untouched.
//
// When Exhausted is set the watermark is the largest height and has no
// successor; Expected then holds the watermark itself.
type HeightMismatchError struct {
	Expected  BlockHeight
	Got       BlockHeight
	Exhausted bool
}

func (e *HeightMismatchError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("no block height after %d, got block height %d", e.Expected, e.Got)
	}
	return fmt.Sprintf("expected block height %d, got block height %d", e.Expected, e.Got)
}

// Is makes errors.Is(err, ErrHeightMismatch) match any HeightMismatchError.
func (e *HeightMismatchError) Is(target error) bool {
	return target == ErrHeightMismatch
}

// Store owns the transaction log, the per-address index, the synced-up-to
// watermark and the timestamp of the last completed sync pass.
//
// All methods are safe for concurrent use. Mutations are serialized by an
// internal lock, so readers never observe a transaction without the
// watermark that produced it.
type Store struct {
	mu sync.RWMutex

	transactions           *transactionLog
	accountTransactions    types.DefaultMap[Address, []TransactionIndex] // ascending indices per tracked address
	syncedUpTo             BlockHeight
	hasSyncedUpTo          bool
	lastSyncTimestampNanos uint64

	book    AddressBook
	actions ActionSink
	now     func() time.Time
}

type config struct {
	book    AddressBook
	actions ActionSink
	now     func() time.Time
}

// Option configures a Store.
type Option func(*config)

// WithAddressBook sets the AddressBook used to classify transfers.
// By default no address is tracked.
func WithAddressBook(b AddressBook) Option {
	return func(c *config) {
		c.book = b
	}
}

// WithActionSink sets the sink that receives multi-part actions.
// By default actions are dropped.
func WithActionSink(s ActionSink) Option {
	return func(c *config) {
		c.actions = s
	}
}

// WithClock overrides the clock used by Stats. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	cfg := config{
		book:    nopAddressBook{},
		actions: nopActionSink{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store{
		transactions:        newTransactionLog(),
		accountTransactions: newAccountIndex(),
		book:                cfg.book,
		actions:             cfg.actions,
		now:                 cfg.now,
	}
}

func newAccountIndex() types.DefaultMap[Address, []TransactionIndex] {
	return types.NewDefaultMap[Address](func() []TransactionIndex { return nil })
}

// InitSyncedUpTo primes the watermark so that the next ingested block must be
// height+1. It may only be called once, before any block is ingested.
func (s *Store) InitSyncedUpTo(height BlockHeight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasSyncedUpTo {
		return ErrSyncedUpToAlreadySet
	}

	s.syncedUpTo = height
	s.hasSyncedUpTo = true
	return nil
}

// SyncedUpTo returns the highest block height processed so far.
// The boolean is false when no block was ingested and the watermark was never primed.
func (s *Store) SyncedUpTo() (BlockHeight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.syncedUpTo, s.hasSyncedUpTo
}

// MarkSyncComplete records that a full sync pass finished at now.
func (s *Store) MarkSyncComplete(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSyncTimestampNanos = unixNanos(now)
}

// LastSyncTimestampNanos returns when the last full sync pass finished.
func (s *Store) LastSyncTimestampNanos() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSyncTimestampNanos
}

// TransactionsCount returns the number of retained transactions.
func (s *Store) TransactionsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.transactions.len()
}

// NextTransactionIndex returns the index the next retained transaction will get.
func (s *Store) NextTransactionIndex() TransactionIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.transactions.nextIndex()
}

// Transaction returns the retained transaction with the given index.
func (s *Store) Transaction(index TransactionIndex) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.transactions.get(index)
}

// TransactionIndexByBlockHeight returns the index of the transaction produced
// by the given block height. Heights that produced no retained transaction,
// heights that were pruned and heights above the newest retained transaction
// all report false.
func (s *Store) TransactionIndexByBlockHeight(height BlockHeight) (TransactionIndex, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.transactions.indexOfBlockHeight(height)
}

// AddressTransactions returns the retained transactions filed under address,
// newest first, skipping the first offset matches and returning at most limit.
// A non-positive limit returns every remaining match.
func (s *Store) AddressTransactions(address Address, offset, limit int) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indices, ok := s.accountTransactions.Lookup(address)
	if !ok || offset >= len(indices) {
		return nil
	}

	end := len(indices) - max(offset, 0)
	start := 0
	if limit > 0 {
		start = max(end-limit, 0)
	}

	txs := make([]Transaction, 0, end-start)
	for i := end - 1; i >= start; i-- {
		if tx, ok := s.transactions.get(indices[i]); ok {
			txs = append(txs, tx)
		}
	}

	return txs
}

// PruneTransactions evicts up to count of the oldest transactions and returns
// how many were evicted. Remaining transactions keep their indices.
func (s *Store) PruneTransactions(count int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	touched := types.NewSet[Address]()

	pruned := 0
	for pruned < count {
		tx, ok := s.transactions.popFront()
		if !ok {
			break
		}

		touched.Add(tx.Transfer.From, tx.Transfer.To)
		pruned++
	}

	first := s.transactions.firstIndex()
	for address := range touched.ToIter() {
		indices, ok := s.accountTransactions.Lookup(address)
		if !ok {
			continue
		}

		drop := 0
		for drop < len(indices) && indices[drop] < first {
			drop++
		}

		if drop == len(indices) {
			s.accountTransactions.Delete(address)
			continue
		}

		s.accountTransactions.Set(address, indices[drop:])
	}

	return pruned
}

// Replace swaps the persisted state of s for the one held by other, keeping
// the AddressBook, ActionSink and clock of s. It is meant for the restore
// step only and must not run concurrently with ingestion into other.
func (s *Store) Replace(other *Store) {
	if s == other {
		return
	}

	other.mu.Lock()
	defer other.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = other.transactions
	s.accountTransactions = other.accountTransactions
	s.syncedUpTo = other.syncedUpTo
	s.hasSyncedUpTo = other.hasSyncedUpTo
	s.lastSyncTimestampNanos = other.lastSyncTimestampNanos

	other.transactions = newTransactionLog()
	other.accountTransactions = newAccountIndex()
	other.syncedUpTo = 0
	other.hasSyncedUpTo = false
	other.lastSyncTimestampNanos = 0
}

// fileUnder appends index to the list of transactions filed under address.
// Must be called with the write lock held.
func (s *Store) fileUnder(address Address, index TransactionIndex) {
	s.accountTransactions.Set(address, append(s.accountTransactions.Get(address), index))
}

// unixNanos converts t to nanoseconds since the epoch, clamping pre-epoch times to zero.
func unixNanos(t time.Time) uint64 {
	return uint64(max(t.UnixNano(), 0))
}
