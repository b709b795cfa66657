package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gabapcia/ledgermirror/internal/accounts"
	statetest "github.com/gabapcia/ledgermirror/internal/state/mocks"
)

type aliceBook struct{}

func (aliceBook) Principal(address accounts.Address) (accounts.Principal, bool) {
	return "p-alice", address == "alice"
}

func (aliceBook) ResolvePending(accounts.Address, accounts.Memo) (accounts.PendingAction, bool) {
	return accounts.PendingAction{}, false
}

// populatedState returns a state with two retained transactions out of three
// blocks, synced up to height 12.
func populatedState(t *testing.T) *State {
	t.Helper()

	store := accounts.New(accounts.WithAddressBook(aliceBook{}))
	require.NoError(t, store.InitSyncedUpTo(9))

	_, err := store.Ingest(accounts.Mint("alice", 500), 0, 10, 10_000)
	require.NoError(t, err)
	_, err = store.Ingest(accounts.Send("bob", "carol", 1, 1), 0, 11, 11_000)
	require.NoError(t, err)
	_, err = store.Ingest(accounts.Send("alice", "bob", 100, 10), 3, 12, 12_000)
	require.NoError(t, err)

	store.MarkSyncComplete(time.Unix(100, 0))
	return New(store)
}

func envelope(version *uint64, payload []byte) []byte {
	var b []byte
	if version != nil {
		b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
		b = protowire.AppendVarint(b, *version)
	}
	b = protowire.AppendTag(b, fieldAccounts, protowire.BytesType)
	b = protowire.AppendBytes(b, payload)
	return encoder.EncodeAll(b, nil)
}

func TestState_EncodeDecode(t *testing.T) {
	t.Run("should round-trip a populated state", func(t *testing.T) {
		original := populatedState(t)

		decoded, err := Decode(original.Encode())

		require.NoError(t, err)
		assert.Equal(t, original.Accounts.StatsAt(time.Unix(200, 0)), decoded.Accounts.StatsAt(time.Unix(200, 0)))
		assert.Equal(t, original.Accounts.Encode(), decoded.Accounts.Encode())
		assert.Len(t, decoded.Accounts.AddressTransactions("alice", 0, 0), 2)
	})

	t.Run("should round-trip an empty state", func(t *testing.T) {
		decoded, err := Decode(New(accounts.New()).Encode())

		require.NoError(t, err)
		_, ok := decoded.Accounts.SyncedUpTo()
		assert.False(t, ok)
		assert.Zero(t, decoded.Accounts.TransactionsCount())
	})

	t.Run("should compress the payload with zstd", func(t *testing.T) {
		data := populatedState(t).Encode()

		raw, err := decoder.DecodeAll(data, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, raw)
	})
}

func TestDecode_Rejects(t *testing.T) {
	valid := accounts.New().Encode()
	v1, v2 := uint64(1), uint64(2)

	testCases := []struct {
		name  string
		input []byte
		want  error
	}{
		{name: "data that is not zstd", input: []byte("plain"), want: accounts.ErrDecode},
		{name: "a missing version", input: envelope(nil, valid), want: ErrUnsupportedVersion},
		{name: "an unknown version", input: envelope(&v2, valid), want: ErrUnsupportedVersion},
		{name: "a truncated envelope", input: encoder.EncodeAll([]byte{0x08}, nil), want: accounts.ErrDecode},
		{name: "a corrupt accounts payload", input: envelope(&v1, []byte{0x0a, 0x05, 0x01}), want: accounts.ErrDecode},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)

			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, accounts.ErrDecode)
		})
	}
}

func TestState_Restore(t *testing.T) {
	t.Run("should keep an empty state when no snapshot exists", func(t *testing.T) {
		ctx := t.Context()
		storage := statetest.NewSnapshotStorage(t)
		s := New(accounts.New())

		storage.EXPECT().LoadState(ctx).Return(nil, ErrSnapshotNotFound).Once()

		require.NoError(t, s.Restore(ctx, storage))
		_, ok := s.Accounts.SyncedUpTo()
		assert.False(t, ok)
	})

	t.Run("should load the snapshot and keep the store collaborators", func(t *testing.T) {
		ctx := t.Context()
		storage := statetest.NewSnapshotStorage(t)
		s := New(accounts.New(accounts.WithAddressBook(aliceBook{})))

		storage.EXPECT().LoadState(ctx).Return(populatedState(t).Encode(), nil).Once()

		require.NoError(t, s.Restore(ctx, storage))

		height, ok := s.Accounts.SyncedUpTo()
		require.True(t, ok)
		assert.Equal(t, uint64(12), height)

		retained, err := s.Accounts.Ingest(accounts.Burn("alice", 5), 0, 13, 13_000)
		require.NoError(t, err)
		assert.True(t, retained)
	})

	t.Run("should fail on a corrupt snapshot", func(t *testing.T) {
		ctx := t.Context()
		storage := statetest.NewSnapshotStorage(t)
		s := New(accounts.New())

		storage.EXPECT().LoadState(ctx).Return([]byte("garbage"), nil).Once()

		assert.ErrorIs(t, s.Restore(ctx, storage), accounts.ErrDecode)
	})

	t.Run("should propagate storage errors", func(t *testing.T) {
		ctx := t.Context()
		storage := statetest.NewSnapshotStorage(t)
		expectedErr := errors.New("redis down")

		storage.EXPECT().LoadState(ctx).Return(nil, expectedErr).Once()

		assert.ErrorIs(t, New(accounts.New()).Restore(ctx, storage), expectedErr)
	})
}

func TestState_Persist(t *testing.T) {
	t.Run("should save a decodable snapshot", func(t *testing.T) {
		ctx := t.Context()
		storage := statetest.NewSnapshotStorage(t)
		s := populatedState(t)

		var saved []byte
		storage.EXPECT().SaveState(ctx, mock.Anything).Run(func(_ context.Context, data []byte) {
			saved = data
		}).Return(nil).Once()

		require.NoError(t, s.Persist(ctx, storage))

		decoded, err := Decode(saved)
		require.NoError(t, err)
		assert.Equal(t, 2, decoded.Accounts.TransactionsCount())
	})

	t.Run("should wrap storage errors", func(t *testing.T) {
		ctx := t.Context()
		storage := statetest.NewSnapshotStorage(t)
		expectedErr := errors.New("redis down")

		storage.EXPECT().SaveState(ctx, mock.Anything).Return(expectedErr).Once()

		err := New(accounts.New()).Persist(ctx, storage)

		assert.ErrorIs(t, err, expectedErr)
		assert.ErrorContains(t, err, "save snapshot")
	})
}
