package accounts

import "math"

// Ingest offers the block at the given height to the store.
//
// The height must be exactly one above the current watermark when one is set;
// otherwise a *HeightMismatchError is returned and nothing changes. When the
// watermark is unset any height is accepted.
//
// The transfer is classified against the AddressBook. When at least one tracked
// address is involved, a Transaction is appended with the next index and filed
// under every tracked address it touches. Multi-part actions resolved along the
// way are handed to the ActionSink. Whether or not anything was retained, the
// watermark moves to height.
//
// Parameters:
//   - transfer: the block payload.
//   - memo: the correlation tag carried by the transfer.
//   - height: the block height of the remote ledger.
//   - timestamp: the producer-supplied timestamp in nanoseconds.
//
// Returns:
//   - true if a Transaction was retained.
//   - an error wrapping ErrHeightMismatch if the block is out of sequence.
func (s *Store) Ingest(transfer Transfer, memo Memo, height BlockHeight, timestamp uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasSyncedUpTo {
		if s.syncedUpTo == math.MaxUint64 {
			return false, &HeightMismatchError{Expected: s.syncedUpTo, Got: height, Exhausted: true}
		}
		if height != s.syncedUpTo+1 {
			return false, &HeightMismatchError{Expected: s.syncedUpTo + 1, Got: height}
		}
	}

	filing := s.classify(transfer, memo, height)
	if filing.retain {
		tx := Transaction{
			Index:       s.transactions.nextIndex(),
			BlockHeight: height,
			Timestamp:   timestamp,
			Memo:        memo,
			Transfer:    transfer,
			Kind:        filing.kind,
		}

		s.transactions.append(tx)
		for _, address := range filing.addresses {
			s.fileUnder(address, tx.Index)
		}
	}

	s.syncedUpTo = height
	s.hasSyncedUpTo = true

	return filing.retain, nil
}

// filing is the outcome of classifying a single transfer.
type filing struct {
	retain    bool
	kind      TransactionKind
	addresses []Address
}

// classify decides whether transfer is retained, with which kind and under
// which addresses, and enqueues any multi-part action it triggers.
// Must be called with the write lock held.
func (s *Store) classify(transfer Transfer, memo Memo, height BlockHeight) filing {
	switch transfer.Kind {
	case TransferKindBurn:
		if _, ok := s.book.Principal(transfer.From); ok {
			return filing{retain: true, kind: TransactionKindBurn, addresses: []Address{transfer.From}}
		}

	case TransferKindMint:
		if _, ok := s.book.Principal(transfer.To); ok {
			return filing{retain: true, kind: TransactionKindMint, addresses: []Address{transfer.To}}
		}

	case TransferKindSend:
		return s.classifySend(transfer, memo, height)
	}

	return filing{}
}

func (s *Store) classifySend(transfer Transfer, memo Memo, height BlockHeight) filing {
	_, toTracked := s.book.Principal(transfer.To)
	fromPrincipal, fromTracked := s.book.Principal(transfer.From)

	// Funds received by a tracked address, possibly from another tracked one.
	if toTracked {
		f := filing{retain: true, kind: TransactionKindSend, addresses: []Address{transfer.To}}
		if fromTracked && transfer.From != transfer.To {
			f.addresses = append(f.addresses, transfer.From)
		}
		return f
	}

	// Funds leaving a tracked address, possibly toward a pending operation of the same owner.
	if fromTracked {
		f := filing{retain: true, kind: TransactionKindSend, addresses: []Address{transfer.From}}
		if pending, ok := s.book.ResolvePending(transfer.To, memo); ok && pending.Principal == fromPrincipal {
			f.kind = pending.Kind.TransactionKind()
			s.actions.Enqueue(pending.Principal, height, actionFor(pending, transfer, memo))
		}
		return f
	}

	// Neither side is tracked, but the deposit completes a pending operation.
	if pending, ok := s.book.ResolvePending(transfer.To, memo); ok {
		s.actions.Enqueue(pending.Principal, height, actionFor(pending, transfer, memo))
	}

	return filing{}
}

func actionFor(pending PendingAction, transfer Transfer, memo Memo) Action {
	return Action{
		Kind:   pending.Kind,
		From:   transfer.From,
		To:     transfer.To,
		Amount: transfer.Amount,
		Memo:   memo,
	}
}
