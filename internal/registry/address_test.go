package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	"github.com/gabapcia/ledgermirror/internal/pkg/logger"
	"github.com/gabapcia/ledgermirror/internal/pkg/validator"
	"github.com/gabapcia/ledgermirror/internal/registry"
	registrytest "github.com/gabapcia/ledgermirror/internal/registry/mocks"
)

func init() {
	_ = logger.Init("error")
}

func TestService_Track(t *testing.T) {
	t.Run("should store a valid tracked address", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		s := registry.New(storage, registry.NewBook())

		storage.EXPECT().TrackAddress(ctx, registry.TrackedAddress{Address: "addr-1", Principal: "p-1"}).Return(nil).Once()

		require.NoError(t, s.Track(ctx, "p-1", "addr-1"))
	})

	t.Run("should reject invalid input without touching storage", func(t *testing.T) {
		s := registry.New(registrytest.NewStorage(t), registry.NewBook())

		assert.ErrorIs(t, s.Track(t.Context(), "", "addr-1"), validator.ErrValidationFailed)
		assert.ErrorIs(t, s.Track(t.Context(), "p-1", "bad address"), validator.ErrValidationFailed)
	})

	t.Run("should return an error if the address is tracked for someone else", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		s := registry.New(storage, registry.NewBook())

		storage.EXPECT().TrackAddress(ctx, registry.TrackedAddress{Address: "addr-1", Principal: "p-2"}).Return(registry.ErrAddressAlreadyTracked).Once()

		assert.ErrorIs(t, s.Track(ctx, "p-2", "addr-1"), registry.ErrAddressAlreadyTracked)
	})
}

func TestService_Untrack(t *testing.T) {
	t.Run("should delete the address", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		s := registry.New(storage, registry.NewBook())

		storage.EXPECT().UntrackAddress(ctx, "addr-1").Return(nil).Once()

		require.NoError(t, s.Untrack(ctx, "addr-1"))
	})

	t.Run("should propagate not tracked", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		s := registry.New(storage, registry.NewBook())

		storage.EXPECT().UntrackAddress(ctx, "addr-1").Return(registry.ErrAddressNotTracked).Once()

		assert.ErrorIs(t, s.Untrack(ctx, "addr-1"), registry.ErrAddressNotTracked)
	})

	t.Run("should reject an empty address", func(t *testing.T) {
		s := registry.New(registrytest.NewStorage(t), registry.NewBook())

		assert.ErrorIs(t, s.Untrack(t.Context(), ""), validator.ErrValidationFailed)
	})
}

func TestService_RegisterPendingDeposit(t *testing.T) {
	deposit := registry.PendingDeposit{Address: "dep-1", Principal: "p-1", Kind: accounts.ActionKindTopUpNeuron, Memo: 42}

	t.Run("should store a valid deposit", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		s := registry.New(storage, registry.NewBook())

		storage.EXPECT().SavePendingDeposit(ctx, deposit).Return(nil).Once()

		require.NoError(t, s.RegisterPendingDeposit(ctx, deposit))
	})

	t.Run("should reject an unknown action kind", func(t *testing.T) {
		s := registry.New(registrytest.NewStorage(t), registry.NewBook())
		invalid := deposit
		invalid.Kind = accounts.ActionKindUnknown

		assert.ErrorIs(t, s.RegisterPendingDeposit(t.Context(), invalid), validator.ErrValidationFailed)
	})
}

func TestService_Refresh(t *testing.T) {
	t.Run("should replace the book content", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		book := registry.NewBook()
		s := registry.New(storage, book)

		storage.EXPECT().LoadRegistry(ctx).Return(registry.Snapshot{
			Tracked: []registry.TrackedAddress{{Address: "addr-1", Principal: "p-1"}},
			Pending: []registry.PendingDeposit{{Address: "dep-1", Principal: "p-1", Kind: accounts.ActionKindStakeNeuron}},
		}, nil).Once()

		require.NoError(t, s.Refresh(ctx))

		principal, ok := book.Principal("addr-1")
		require.True(t, ok)
		assert.Equal(t, "p-1", principal)

		_, ok = book.ResolvePending("dep-1", 7)
		assert.True(t, ok)
	})

	t.Run("should keep the book when loading fails", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		book := registry.NewBook()
		book.Replace(registry.Snapshot{Tracked: []registry.TrackedAddress{{Address: "addr-1", Principal: "p-1"}}})
		s := registry.New(storage, book)

		expectedErr := errors.New("redis down")
		storage.EXPECT().LoadRegistry(ctx).Return(registry.Snapshot{}, expectedErr).Once()

		assert.ErrorIs(t, s.Refresh(ctx), expectedErr)
		_, ok := book.Principal("addr-1")
		assert.True(t, ok)
	})
}

func TestService_CommitSettled(t *testing.T) {
	t.Run("should delete every settled deposit", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		book := registry.NewBook()
		book.Replace(registry.Snapshot{Pending: []registry.PendingDeposit{
			{Address: "dep-1", Principal: "p-1", Kind: accounts.ActionKindStakeNeuron},
			{Address: "dep-2", Principal: "p-2", Kind: accounts.ActionKindTopUpCanister},
		}})
		book.Settle("dep-1")
		book.Settle("dep-2")
		s := registry.New(storage, book)

		storage.EXPECT().DeletePendingDeposit(ctx, "dep-1").Return(nil).Once()
		storage.EXPECT().DeletePendingDeposit(ctx, "dep-2").Return(registry.ErrPendingDepositNotFound).Once()

		require.NoError(t, s.CommitSettled(ctx))
		assert.Empty(t, book.TakeSettled())
	})

	t.Run("should keep failed deposits settled for the next commit", func(t *testing.T) {
		ctx := t.Context()
		storage := registrytest.NewStorage(t)
		book := registry.NewBook()
		book.Replace(registry.Snapshot{Pending: []registry.PendingDeposit{{Address: "dep-1", Principal: "p-1", Kind: accounts.ActionKindStakeNeuron}}})
		book.Settle("dep-1")
		s := registry.New(storage, book)

		expectedErr := errors.New("redis down")
		storage.EXPECT().DeletePendingDeposit(ctx, "dep-1").Return(expectedErr).Once()

		assert.ErrorIs(t, s.CommitSettled(ctx), expectedErr)
		assert.Equal(t, []accounts.Address{"dep-1"}, book.TakeSettled())
	})

	t.Run("should do nothing when nothing was settled", func(t *testing.T) {
		s := registry.New(registrytest.NewStorage(t), registry.NewBook())

		assert.NoError(t, s.CommitSettled(t.Context()))
	})
}
