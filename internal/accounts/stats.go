package accounts

import "time"

// Stats is a read-only summary of the store, recomputed on every call.
type Stats struct {
	TransactionsCount                 int     `json:"transactions_count"`
	BlockHeightSyncedUpTo             *uint64 `json:"block_height_synced_up_to,omitempty"`
	EarliestTransactionTimestampNanos uint64  `json:"earliest_transaction_timestamp_nanos"`
	EarliestTransactionBlockHeight    uint64  `json:"earliest_transaction_block_height"`
	LatestTransactionTimestampNanos   uint64  `json:"latest_transaction_timestamp_nanos"`
	LatestTransactionBlockHeight      uint64  `json:"latest_transaction_block_height"`
	SecondsSinceLastLedgerSync        uint64  `json:"seconds_since_last_ledger_sync"`
}

// Stats derives the current Stats using the store's clock.
func (s *Store) Stats() Stats {
	return s.StatsAt(s.now())
}

// StatsAt derives Stats as observed at now.
//
// Earliest and latest fields are zero when the log is empty. The seconds since
// the last sync are floored, and are zero when now precedes the last sync.
func (s *Store) StatsAt(now time.Time) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TransactionsCount: s.transactions.len(),
	}

	if s.hasSyncedUpTo {
		height := s.syncedUpTo
		stats.BlockHeightSyncedUpTo = &height
	}

	if earliest, ok := s.transactions.front(); ok {
		stats.EarliestTransactionTimestampNanos = earliest.Timestamp
		stats.EarliestTransactionBlockHeight = earliest.BlockHeight
	}

	if latest, ok := s.transactions.back(); ok {
		stats.LatestTransactionTimestampNanos = latest.Timestamp
		stats.LatestTransactionBlockHeight = latest.BlockHeight
	}

	if nowNanos := unixNanos(now); nowNanos > s.lastSyncTimestampNanos {
		stats.SecondsSinceLastLedgerSync = (nowNanos - s.lastSyncTimestampNanos) / uint64(time.Second)
	}

	return stats
}
