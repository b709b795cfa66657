package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
	"github.com/gabapcia/ledgermirror/internal/pkg/validator"
)

var (
	// ErrAddressAlreadyTracked is returned when an address is already tracked for another principal.
	ErrAddressAlreadyTracked = errors.New("address already tracked")

	// ErrAddressNotTracked is returned when untracking an address that is not tracked.
	ErrAddressNotTracked = errors.New("address not tracked")

	// ErrPendingDepositNotFound is returned when removing a pending deposit that does not exist.
	ErrPendingDepositNotFound = errors.New("pending deposit not found")
)

// TrackedAddress binds a ledger address to the principal that owns it.
type TrackedAddress struct {
	Address   accounts.Address   `validate:"required,ledger_address"`
	Principal accounts.Principal `validate:"required"`
}

// PendingDeposit is an operation waiting for funds to arrive at Address.
type PendingDeposit struct {
	Address   accounts.Address    `json:"address" validate:"required,ledger_address"`
	Principal accounts.Principal  `json:"principal" validate:"required"`
	Kind      accounts.ActionKind `json:"kind" validate:"required,min=1,max=4"`
	Memo      accounts.Memo       `json:"memo"`
}

// Matches reports whether a transfer carrying memo completes the deposit.
func (d PendingDeposit) Matches(memo accounts.Memo) bool {
	return d.Memo == 0 || d.Memo == memo
}

// Snapshot is the full content of the registry at one point in time.
type Snapshot struct {
	Tracked []TrackedAddress
	Pending []PendingDeposit
}

// Storage persists the registry.
type Storage interface {
	// TrackAddress stores the address. It returns ErrAddressAlreadyTracked
	// when the address is bound to a different principal and succeeds
	// without changes when it is bound to the same one.
	TrackAddress(ctx context.Context, tracked TrackedAddress) error

	// UntrackAddress deletes the address or returns ErrAddressNotTracked.
	UntrackAddress(ctx context.Context, address accounts.Address) error

	// SavePendingDeposit stores the deposit, replacing any previous one for the same address.
	SavePendingDeposit(ctx context.Context, deposit PendingDeposit) error

	// DeletePendingDeposit deletes the deposit or returns ErrPendingDepositNotFound.
	DeletePendingDeposit(ctx context.Context, address accounts.Address) error

	// LoadRegistry returns everything stored.
	LoadRegistry(ctx context.Context) (Snapshot, error)
}

func (s *service) Track(ctx context.Context, principal accounts.Principal, address accounts.Address) error {
	tracked := TrackedAddress{Address: address, Principal: principal}
	if err := validator.Validate(tracked); err != nil {
		return err
	}

	return s.storage.TrackAddress(ctx, tracked)
}

func (s *service) Untrack(ctx context.Context, address accounts.Address) error {
	if err := validator.Var(address, "required,ledger_address"); err != nil {
		return err
	}

	return s.storage.UntrackAddress(ctx, address)
}

func (s *service) RegisterPendingDeposit(ctx context.Context, deposit PendingDeposit) error {
	if err := validator.Validate(deposit); err != nil {
		return err
	}

	return s.storage.SavePendingDeposit(ctx, deposit)
}

func (s *service) RemovePendingDeposit(ctx context.Context, address accounts.Address) error {
	return s.storage.DeletePendingDeposit(ctx, address)
}

func (s *service) Refresh(ctx context.Context) error {
	snapshot, err := s.storage.LoadRegistry(ctx)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	s.book.Replace(snapshot)
	return nil
}

func (s *service) CommitSettled(ctx context.Context) error {
	var errs []error
	for _, address := range s.book.TakeSettled() {
		err := s.storage.DeletePendingDeposit(ctx, address)
		if err == nil || errors.Is(err, ErrPendingDepositNotFound) {
			continue
		}

		logger.Warn(ctx, "failed to remove settled pending deposit",
			"deposit.address", address,
			"error", err,
		)

		s.book.markSettled(address)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
