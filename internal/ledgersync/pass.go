package ledgersync

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
)

// passResult summarizes a single sync pass.
type passResult struct {
	ingested int
	retained int
	pruned   int
}

// pass brings the store up to the current tip of the ledger.
//
// A height mismatch aborts the pass before it is marked complete. Pruning,
// forwarding and committing settled deposits only run after a complete pass.
func (s *service) pass(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, "ledgersync.pass", trace.WithSpanKind(trace.SpanKindInternal))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := s.registry.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh registry: %w", err)
	}

	var tip uint64
	err = s.retry.Execute(ctx, func() error {
		var err error
		tip, err = s.ledger.ChainLength(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("read chain length: %w", err)
	}

	result, err := s.ingestUpTo(ctx, tip)
	span.SetAttributes(
		attribute.Int64("ledger.tip", int64(min(tip, math.MaxInt64))),
		attribute.Int("sync.blocks_ingested", result.ingested),
		attribute.Int("sync.transactions_retained", result.retained),
	)
	if err != nil {
		return err
	}

	store := s.state.Accounts
	store.MarkSyncComplete(s.now())

	if store.TransactionsCount() > s.pruneThreshold {
		result.pruned = store.PruneTransactions(s.pruneBatch)
	}

	if result.ingested > 0 || result.pruned > 0 {
		height, _ := store.SyncedUpTo()
		logger.Info(ctx, "ledger sync pass completed",
			"sync.synced_up_to", height,
			"sync.blocks_ingested", result.ingested,
			"sync.transactions_retained", result.retained,
			"sync.transactions_pruned", result.pruned,
		)
	}

	if _, err := s.forwarder.Forward(ctx); err != nil {
		return fmt.Errorf("forward actions: %w", err)
	}

	if err := s.registry.CommitSettled(ctx); err != nil {
		return fmt.Errorf("commit settled deposits: %w", err)
	}

	return nil
}

// ingestUpTo fetches and ingests every block below tip that the store has not
// seen yet.
func (s *service) ingestUpTo(ctx context.Context, tip uint64) (passResult, error) {
	var result passResult
	store := s.state.Accounts

	for {
		next, ok := nextHeight(store)
		if !ok || next >= tip {
			return result, nil
		}

		length := min(s.batchSize, tip-next)

		var blocks []Block
		err := s.retry.Execute(ctx, func() error {
			var err error
			blocks, err = s.ledger.QueryBlocks(ctx, next, length)
			return err
		})
		if err != nil {
			return result, fmt.Errorf("query blocks [%d, %d): %w", next, next+length, err)
		}

		if len(blocks) == 0 {
			logger.Warn(ctx, "ledger returned no blocks below its tip",
				"ledger.start", next,
				"ledger.tip", tip,
			)
			return result, nil
		}

		for _, block := range blocks {
			retained, err := store.Ingest(block.Transfer, block.Memo, block.Height, block.Timestamp)
			if err != nil {
				var mismatch *accounts.HeightMismatchError
				if errors.As(err, &mismatch) {
					logger.Error(ctx, "ledger returned an out of sequence block",
						"block.expected_height", mismatch.Expected,
						"block.height", mismatch.Got,
					)
				}
				return result, err
			}

			result.ingested++
			s.blocksIngested.Add(ctx, 1)
			if retained {
				result.retained++
				s.transactionsRetained.Add(ctx, 1)
			}
		}
	}
}

// nextHeight returns the first height the store still needs. It is false
// once the watermark has no successor.
func nextHeight(store *accounts.Store) (uint64, bool) {
	height, ok := store.SyncedUpTo()
	if !ok {
		return 0, true
	}

	if height == math.MaxUint64 {
		return 0, false
	}

	return height + 1, true
}
