// Package registry manages the addresses the mirror tracks and the pending
// deposits that complete multi-part operations.
//
// The durable source of truth lives behind Storage. A Book keeps an
// in-memory copy that the accounts store consults during ingestion, so
// classifying a transfer never performs I/O.
package registry

import (
	"context"

	"github.com/gabapcia/ledgermirror/internal/accounts"
)

// Service registers tracked addresses and pending deposits.
//
// Implementations validate their input and persist it through Storage. The
// Book only picks up changes on the next Refresh.
type Service interface {
	// Track starts tracking an address on behalf of a principal.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - principal: the owner of the address.
	//   - address: the ledger address to track.
	//
	// Returns:
	//   - ErrAddressAlreadyTracked if the address is tracked for another principal.
	//   - a validation error wrapping validator.ErrValidationFailed on bad input.
	Track(ctx context.Context, principal accounts.Principal, address accounts.Address) error

	// Untrack stops tracking an address. Transactions already retained are kept.
	//
	// Returns:
	//   - ErrAddressNotTracked if the address was not tracked.
	Untrack(ctx context.Context, address accounts.Address) error

	// RegisterPendingDeposit records that a deposit to an address completes
	// an operation of the given principal.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - deposit: the deposit address, its owner, the operation kind and an
	//     optional memo. A zero memo matches any transfer.
	RegisterPendingDeposit(ctx context.Context, deposit PendingDeposit) error

	// RemovePendingDeposit forgets the pending deposit registered for an address.
	//
	// Returns:
	//   - ErrPendingDepositNotFound if nothing was registered.
	RemovePendingDeposit(ctx context.Context, address accounts.Address) error

	// Refresh reloads the Book from Storage.
	Refresh(ctx context.Context) error

	// CommitSettled removes from Storage every pending deposit the Book
	// settled since the last commit. Deposits that fail to be removed stay
	// settled and are retried on the next call.
	CommitSettled(ctx context.Context) error
}

// service is the default Service backed by a Storage and a Book.
type service struct {
	storage Storage
	book    *Book
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a registry Service that persists through storage and keeps
// book in sync with it.
func New(storage Storage, book *Book) *service {
	return &service{
		storage: storage,
		book:    book,
	}
}
