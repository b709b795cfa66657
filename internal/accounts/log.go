package accounts

import (
	"cmp"
	"slices"

	"github.com/gabapcia/ledgermirror/internal/pkg/types"
)

// initialLogCapacity is the ring capacity allocated for a new transaction log.
const initialLogCapacity = 1024

// transactionLog is the windowed, append-only buffer of retained transactions.
//
// Transactions are ordered by Index and BlockHeight simultaneously. The
// transaction at logical position i has Index offset+i, where offset is the
// Index of the front transaction. Evicting from the front never renumbers the
// remaining transactions.
type transactionLog struct {
	ring *types.Ring[Transaction]
	next TransactionIndex // index assigned to the next appended transaction
}

func newTransactionLog() *transactionLog {
	return &transactionLog{ring: types.NewRing[Transaction](initialLogCapacity)}
}

func (l *transactionLog) len() int {
	return l.ring.Len()
}

// nextIndex returns the index the next appended transaction must carry.
func (l *transactionLog) nextIndex() TransactionIndex {
	return l.next
}

// firstIndex returns the index of the oldest retained transaction, or
// nextIndex when the log is empty.
func (l *transactionLog) firstIndex() TransactionIndex {
	if front, ok := l.ring.Front(); ok {
		return front.Index
	}

	return l.next
}

// append stores tx at the back. The caller guarantees tx.Index == nextIndex()
// and that tx.BlockHeight is above every stored height.
func (l *transactionLog) append(tx Transaction) {
	l.ring.PushBack(tx)
	l.next = tx.Index + 1
}

// popFront evicts the oldest transaction.
func (l *transactionLog) popFront() (Transaction, bool) {
	return l.ring.PopFront()
}

func (l *transactionLog) front() (Transaction, bool) {
	return l.ring.Front()
}

func (l *transactionLog) back() (Transaction, bool) {
	return l.ring.Back()
}

// get returns the transaction with the given index using offset arithmetic.
func (l *transactionLog) get(index TransactionIndex) (Transaction, bool) {
	offset := l.firstIndex()
	if index < offset {
		return Transaction{}, false
	}

	pos := index - offset
	if pos >= uint64(l.ring.Len()) {
		return Transaction{}, false
	}

	return l.ring.At(int(pos))
}

// indexOfBlockHeight binary searches the log for the transaction produced by
// the given block height and returns its index.
//
// The ring may be split into two physical segments. The back segment holds the
// newest transactions, so it is searched whenever its first height is not
// above the target; otherwise only the front segment can contain it.
// Heights above the newest stored height are rejected without searching.
func (l *transactionLog) indexOfBlockHeight(height BlockHeight) (TransactionIndex, bool) {
	latest, ok := l.ring.Back()
	if !ok || height > latest.BlockHeight {
		return 0, false
	}

	byHeight := func(tx Transaction, target BlockHeight) int {
		return cmp.Compare(tx.BlockHeight, target)
	}

	segment, back := l.ring.Segments()
	if len(back) > 0 && back[0].BlockHeight <= height {
		segment = back
	}

	i, found := slices.BinarySearchFunc(segment, height, byHeight)
	if !found {
		return 0, false
	}

	return segment[i].Index, true
}

// all returns a copy of every stored transaction, oldest first.
func (l *transactionLog) all() []Transaction {
	return l.ring.ToSlice()
}
