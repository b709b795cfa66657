package redis

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/registry"
)

var (
	// trackedKey is a hash of address -> principal.
	trackedKey = key("registry", "tracked")

	// pendingKey is a hash of deposit address -> JSON encoded registry.PendingDeposit.
	pendingKey = key("registry", "pending")
)

// TrackAddress binds the address to its principal with HSETNX. Tracking an
// address again for the same principal is a no-op.
func (c *client) TrackAddress(ctx context.Context, tracked registry.TrackedAddress) error {
	created, err := c.conn.HSetNX(ctx, trackedKey, tracked.Address, tracked.Principal).Result()
	if err != nil {
		return err
	}

	if created {
		return nil
	}

	owner, err := c.conn.HGet(ctx, trackedKey, tracked.Address).Result()
	if err != nil {
		return err
	}

	if owner != tracked.Principal {
		return registry.ErrAddressAlreadyTracked
	}

	return nil
}

func (c *client) UntrackAddress(ctx context.Context, address accounts.Address) error {
	removed, err := c.conn.HDel(ctx, trackedKey, address).Result()
	if err != nil {
		return err
	}

	if removed == 0 {
		return registry.ErrAddressNotTracked
	}

	return nil
}

func (c *client) SavePendingDeposit(ctx context.Context, deposit registry.PendingDeposit) error {
	data, err := json.Marshal(deposit)
	if err != nil {
		return err
	}

	return c.conn.HSet(ctx, pendingKey, deposit.Address, data).Err()
}

func (c *client) DeletePendingDeposit(ctx context.Context, address accounts.Address) error {
	removed, err := c.conn.HDel(ctx, pendingKey, address).Result()
	if err != nil {
		return err
	}

	if removed == 0 {
		return registry.ErrPendingDepositNotFound
	}

	return nil
}

// LoadRegistry reads both hashes. Entries are sorted by address.
func (c *client) LoadRegistry(ctx context.Context) (registry.Snapshot, error) {
	tracked, err := c.conn.HGetAll(ctx, trackedKey).Result()
	if err != nil {
		return registry.Snapshot{}, err
	}

	pending, err := c.conn.HGetAll(ctx, pendingKey).Result()
	if err != nil {
		return registry.Snapshot{}, err
	}

	snapshot := registry.Snapshot{
		Tracked: make([]registry.TrackedAddress, 0, len(tracked)),
		Pending: make([]registry.PendingDeposit, 0, len(pending)),
	}

	for address, principal := range tracked {
		snapshot.Tracked = append(snapshot.Tracked, registry.TrackedAddress{Address: address, Principal: principal})
	}

	for address, raw := range pending {
		var deposit registry.PendingDeposit
		if err := json.Unmarshal([]byte(raw), &deposit); err != nil {
			return registry.Snapshot{}, fmt.Errorf("decode pending deposit %s: %w", address, err)
		}
		snapshot.Pending = append(snapshot.Pending, deposit)
	}

	slices.SortFunc(snapshot.Tracked, func(a, b registry.TrackedAddress) int { return cmp.Compare(a.Address, b.Address) })
	slices.SortFunc(snapshot.Pending, func(a, b registry.PendingDeposit) int { return cmp.Compare(a.Address, b.Address) })

	return snapshot, nil
}

var _ registry.Storage = (*client)(nil)
