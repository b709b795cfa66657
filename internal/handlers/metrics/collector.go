// Package metrics exposes the accounts store statistics over HTTP, both as
// Prometheus gauges and as a JSON document.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gabapcia/ledgermirror/internal/accounts"
)

const namespace = "ledgermirror"

// StatsReader is the read side of the accounts store.
type StatsReader interface {
	Stats() accounts.Stats
}

// collector derives its gauges from a fresh Stats on every scrape.
type collector struct {
	stats StatsReader

	transactionsCount          *prometheus.Desc
	secondsSinceLastLedgerSync *prometheus.Desc
	blockHeightSyncedUpTo      *prometheus.Desc
	earliestTransactionHeight  *prometheus.Desc
	latestTransactionHeight    *prometheus.Desc
	earliestTransactionTime    *prometheus.Desc
	latestTransactionTime      *prometheus.Desc
}

var _ prometheus.Collector = (*collector)(nil)

// NewCollector returns a prometheus.Collector over stats.
func NewCollector(stats StatsReader) *collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, nil)
	}

	return &collector{
		stats:                      stats,
		transactionsCount:          desc("transactions_count", "Number of transactions retained by the mirror."),
		secondsSinceLastLedgerSync: desc("seconds_since_last_ledger_sync", "Number of seconds since the last complete ledger sync."),
		blockHeightSyncedUpTo:      desc("block_height_synced_up_to", "Highest ledger height ingested. Absent before the first block."),
		earliestTransactionHeight:  desc("earliest_transaction_block_height", "Block height of the oldest retained transaction."),
		latestTransactionHeight:    desc("latest_transaction_block_height", "Block height of the newest retained transaction."),
		earliestTransactionTime:    desc("earliest_transaction_timestamp_seconds", "Ledger timestamp of the oldest retained transaction."),
		latestTransactionTime:      desc("latest_transaction_timestamp_seconds", "Ledger timestamp of the newest retained transaction."),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.transactionsCount
	ch <- c.secondsSinceLastLedgerSync
	ch <- c.blockHeightSyncedUpTo
	ch <- c.earliestTransactionHeight
	ch <- c.latestTransactionHeight
	ch <- c.earliestTransactionTime
	ch <- c.latestTransactionTime
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.stats.Stats()

	gauge := func(desc *prometheus.Desc, value float64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value)
	}

	gauge(c.transactionsCount, float64(stats.TransactionsCount))
	gauge(c.secondsSinceLastLedgerSync, float64(stats.SecondsSinceLastLedgerSync))

	if stats.BlockHeightSyncedUpTo != nil {
		gauge(c.blockHeightSyncedUpTo, float64(*stats.BlockHeightSyncedUpTo))
	}

	if stats.TransactionsCount == 0 {
		return
	}

	gauge(c.earliestTransactionHeight, float64(stats.EarliestTransactionBlockHeight))
	gauge(c.latestTransactionHeight, float64(stats.LatestTransactionBlockHeight))
	gauge(c.earliestTransactionTime, nanosToSeconds(stats.EarliestTransactionTimestampNanos))
	gauge(c.latestTransactionTime, nanosToSeconds(stats.LatestTransactionTimestampNanos))
}

func nanosToSeconds(nanos uint64) float64 {
	return float64(nanos) / 1e9
}
