package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// assertEquivalent checks that every read accessor of got answers like want's.
func assertEquivalent(t *testing.T, want, got *Store) {
	t.Helper()

	now := time.Unix(1_000, 0)
	assert.Equal(t, want.StatsAt(now), got.StatsAt(now))
	assert.Equal(t, want.NextTransactionIndex(), got.NextTransactionIndex())
	assert.Equal(t, want.LastSyncTimestampNanos(), got.LastSyncTimestampNanos())
	assert.Equal(t, want.transactions.all(), got.transactions.all())
	assert.Equal(t, want.accountTransactions.ToMap(), got.accountTransactions.ToMap())

	wantSynced, wantOK := want.SyncedUpTo()
	gotSynced, gotOK := got.SyncedUpTo()
	assert.Equal(t, wantOK, gotOK)
	assert.Equal(t, wantSynced, gotSynced)

	for h := BlockHeight(0); h <= wantSynced+1 && h < 256; h++ {
		wantIndex, wantFound := want.TransactionIndexByBlockHeight(h)
		gotIndex, gotFound := got.TransactionIndexByBlockHeight(h)
		assert.Equal(t, wantFound, gotFound, "height %d", h)
		assert.Equal(t, wantIndex, gotIndex, "height %d", h)
	}

	for i := TransactionIndex(0); i < want.NextTransactionIndex()+1; i++ {
		wantTx, wantFound := want.Transaction(i)
		gotTx, gotFound := got.Transaction(i)
		assert.Equal(t, wantFound, gotFound, "index %d", i)
		assert.Equal(t, wantTx, gotTx, "index %d", i)
	}
}

func TestStore_EncodeDecode(t *testing.T) {
	t.Run("should round-trip the empty state", func(t *testing.T) {
		s := New()

		decoded, err := Decode(s.Encode())

		require.NoError(t, err)
		assertEquivalent(t, s, decoded)
	})

	t.Run("should round-trip a watermark primed at zero", func(t *testing.T) {
		s := New()
		require.NoError(t, s.InitSyncedUpTo(0))

		decoded, err := Decode(s.Encode())

		require.NoError(t, err)
		synced, ok := decoded.SyncedUpTo()
		require.True(t, ok)
		assert.Zero(t, synced)
	})

	t.Run("should round-trip a populated and pruned state", func(t *testing.T) {
		book := newFakeBook().
			track("p-a", "alice", "bob").
			expect("stake", PendingAction{Principal: "p-a", Kind: ActionKindStakeNeuron})
		s := New(WithAddressBook(book))
		require.NoError(t, s.InitSyncedUpTo(99))

		transfers := []Transfer{
			Send("alice", "bob", 10, 1),
			Burn("alice", 3),
			Send("x", "y", 1, 0),
			Mint("bob", 7),
			Send("alice", "stake", 100, 1),
			Send("carol", "alice", 4, 1),
		}
		for i, tr := range transfers {
			_, err := s.Ingest(tr, Memo(i), BlockHeight(100+i), uint64(i)*1_000_000)
			require.NoError(t, err)
		}
		s.PruneTransactions(1)
		s.MarkSyncComplete(time.Unix(500, 42))

		decoded, err := Decode(s.Encode())

		require.NoError(t, err)
		assertEquivalent(t, s, decoded)

		stake, ok := decoded.Transaction(3)
		require.True(t, ok)
		assert.Equal(t, TransactionKindStakeNeuron, stake.Kind)
		assert.Equal(t, Memo(4), stake.Memo)
	})

	t.Run("should round-trip a fully pruned state and keep numbering", func(t *testing.T) {
		s := seededStore(t, 1, 2, 3)
		s.PruneTransactions(3)

		decoded, err := Decode(s.Encode(), WithAddressBook(newFakeBook().track("p", "alice")))

		require.NoError(t, err)
		assertEquivalent(t, s, decoded)
		require.True(t, mustIngest(t, decoded, Mint("alice", 1), 4))

		tx, ok := decoded.Transaction(3)
		require.True(t, ok)
		assert.Equal(t, BlockHeight(4), tx.BlockHeight)
	})

	t.Run("should produce identical buffers for identical states", func(t *testing.T) {
		assert.Equal(t, seededStore(t, 5, 8).Encode(), seededStore(t, 5, 8).Encode())
	})

	t.Run("should skip unknown fields", func(t *testing.T) {
		s := seededStore(t, 1)
		data := s.Encode()
		data = protowire.AppendTag(data, 99, protowire.BytesType)
		data = protowire.AppendBytes(data, []byte("future"))

		decoded, err := Decode(data)

		require.NoError(t, err)
		assertEquivalent(t, s, decoded)
	})
}

// storeBuffer hand-assembles an encoded store.
type storeBuffer struct {
	b []byte
}

func (sb *storeBuffer) tx(tx Transaction) *storeBuffer {
	sb.b = protowire.AppendTag(sb.b, fieldStoreTransactions, protowire.BytesType)
	sb.b = protowire.AppendBytes(sb.b, encodeTransaction(tx))
	return sb
}

func (sb *storeBuffer) synced(h BlockHeight) *storeBuffer {
	sb.b = protowire.AppendTag(sb.b, fieldStoreSyncedUpTo, protowire.VarintType)
	sb.b = protowire.AppendVarint(sb.b, h)
	return sb
}

func (sb *storeBuffer) entry(address Address, indices ...TransactionIndex) *storeBuffer {
	sb.b = protowire.AppendTag(sb.b, fieldStoreAccountTransactions, protowire.BytesType)
	sb.b = protowire.AppendBytes(sb.b, encodeAccountEntry(address, indices))
	return sb
}

func (sb *storeBuffer) next(i TransactionIndex) *storeBuffer {
	sb.b = protowire.AppendTag(sb.b, fieldStoreNextIndex, protowire.VarintType)
	sb.b = protowire.AppendVarint(sb.b, i)
	return sb
}

func sendTx(index TransactionIndex, height BlockHeight) Transaction {
	return Transaction{Index: index, BlockHeight: height, Transfer: Send("alice", "bob", 1, 0), Kind: TransactionKindSend}
}

func TestDecode(t *testing.T) {
	t.Run("should accept a hand-assembled buffer", func(t *testing.T) {
		data := (&storeBuffer{}).tx(sendTx(4, 10)).tx(sendTx(5, 11)).synced(12).entry("bob", 4, 5).b

		s, err := Decode(data)

		require.NoError(t, err)
		assert.Equal(t, TransactionIndex(6), s.NextTransactionIndex())
		assert.Len(t, s.AddressTransactions("bob", 0, 0), 2)
	})

	testCases := []struct {
		name string
		data []byte
	}{
		{name: "truncated tag", data: []byte{0x80}},
		{name: "truncated length-delimited field", data: []byte{0x0a, 0x05, 0x01}},
		{name: "wrong wire type for the watermark", data: protowire.AppendBytes(protowire.AppendTag(nil, fieldStoreSyncedUpTo, protowire.BytesType), []byte{1})},
		{name: "non-contiguous indices", data: (&storeBuffer{}).tx(sendTx(0, 1)).tx(sendTx(2, 2)).synced(2).b},
		{name: "non-increasing heights", data: (&storeBuffer{}).tx(sendTx(0, 5)).tx(sendTx(1, 5)).synced(5).b},
		{name: "transactions without a watermark", data: (&storeBuffer{}).tx(sendTx(0, 5)).b},
		{name: "watermark below the latest height", data: (&storeBuffer{}).tx(sendTx(0, 5)).synced(4).b},
		{name: "next index not following the log", data: (&storeBuffer{}).tx(sendTx(0, 5)).synced(5).next(3).b},
		{name: "invalid transaction kind", data: (&storeBuffer{}).tx(Transaction{BlockHeight: 1, Transfer: Mint("a", 1), Kind: 200}).synced(1).b},
		{name: "invalid transfer kind", data: (&storeBuffer{}).tx(Transaction{BlockHeight: 1}).synced(1).b},
		{name: "index entry outside the window", data: (&storeBuffer{}).tx(sendTx(0, 5)).synced(5).entry("bob", 1).b},
		{name: "index entry for an uninvolved address", data: (&storeBuffer{}).tx(sendTx(0, 5)).synced(5).entry("carol", 0).b},
		{name: "index entry out of order", data: (&storeBuffer{}).tx(sendTx(0, 5)).tx(sendTx(1, 6)).synced(6).entry("bob", 1, 0).b},
		{name: "duplicate index entry", data: (&storeBuffer{}).tx(sendTx(0, 5)).synced(5).entry("bob", 0).entry("bob", 0).b},
		{name: "empty index entry", data: (&storeBuffer{}).tx(sendTx(0, 5)).synced(5).entry("bob").b},
		{name: "index entry without address", data: (&storeBuffer{}).tx(sendTx(0, 5)).synced(5).entry("", 0).b},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			s, err := Decode(tc.data)

			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}
