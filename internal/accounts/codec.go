package accounts

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gabapcia/ledgermirror/internal/pkg/types"
)

// ErrDecode is wrapped by every error returned from Decode.
var ErrDecode = errors.New("failed to decode accounts store")

// Store message fields.
const (
	fieldStoreTransactions        protowire.Number = 1
	fieldStoreSyncedUpTo          protowire.Number = 2
	fieldStoreLastSyncTimestamp   protowire.Number = 3
	fieldStoreAccountTransactions protowire.Number = 4
	fieldStoreNextIndex           protowire.Number = 5
)

// Transaction message fields.
const (
	fieldTxIndex       protowire.Number = 1
	fieldTxBlockHeight protowire.Number = 2
	fieldTxTimestamp   protowire.Number = 3
	fieldTxMemo        protowire.Number = 4
	fieldTxTransfer    protowire.Number = 5
	fieldTxKind        protowire.Number = 6
)

// Transfer message fields.
const (
	fieldTransferKind   protowire.Number = 1
	fieldTransferFrom   protowire.Number = 2
	fieldTransferTo     protowire.Number = 3
	fieldTransferAmount protowire.Number = 4
	fieldTransferFee    protowire.Number = 5
)

// Account index entry fields.
const (
	fieldEntryAddress protowire.Number = 1
	fieldEntryIndices protowire.Number = 2
)

// Encode serializes the transaction log, the per-address index, the watermark
// and the last sync timestamp into a single buffer using the protobuf wire format.
//
// Address index entries are written in ascending address order so equal
// states always produce equal buffers.
func (s *Store) Encode() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b []byte

	front, back := s.transactions.ring.Segments()
	for _, segment := range [][]Transaction{front, back} {
		for _, tx := range segment {
			b = protowire.AppendTag(b, fieldStoreTransactions, protowire.BytesType)
			b = protowire.AppendBytes(b, encodeTransaction(tx))
		}
	}

	// Presence matters here: a watermark primed at zero is not an absent one.
	if s.hasSyncedUpTo {
		b = protowire.AppendTag(b, fieldStoreSyncedUpTo, protowire.VarintType)
		b = protowire.AppendVarint(b, s.syncedUpTo)
	}

	b = appendVarintField(b, fieldStoreLastSyncTimestamp, s.lastSyncTimestampNanos)

	index := s.accountTransactions.ToMap()
	for _, address := range types.SortedKeys(s.accountTransactions) {
		b = protowire.AppendTag(b, fieldStoreAccountTransactions, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeAccountEntry(address, index[address]))
	}

	return appendVarintField(b, fieldStoreNextIndex, s.transactions.nextIndex())
}

func encodeTransaction(tx Transaction) []byte {
	var b []byte
	b = appendVarintField(b, fieldTxIndex, tx.Index)
	b = appendVarintField(b, fieldTxBlockHeight, tx.BlockHeight)
	b = appendVarintField(b, fieldTxTimestamp, tx.Timestamp)
	b = appendVarintField(b, fieldTxMemo, tx.Memo)
	b = protowire.AppendTag(b, fieldTxTransfer, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeTransfer(tx.Transfer))
	return appendVarintField(b, fieldTxKind, uint64(tx.Kind))
}

func encodeTransfer(t Transfer) []byte {
	var b []byte
	b = appendVarintField(b, fieldTransferKind, uint64(t.Kind))
	b = appendStringField(b, fieldTransferFrom, t.From)
	b = appendStringField(b, fieldTransferTo, t.To)
	b = appendVarintField(b, fieldTransferAmount, t.Amount)
	return appendVarintField(b, fieldTransferFee, t.Fee)
}

func encodeAccountEntry(address Address, indices []TransactionIndex) []byte {
	var packed []byte
	for _, i := range indices {
		packed = protowire.AppendVarint(packed, i)
	}

	var b []byte
	b = protowire.AppendTag(b, fieldEntryAddress, protowire.BytesType)
	b = protowire.AppendString(b, address)
	b = protowire.AppendTag(b, fieldEntryIndices, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendStringField(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// Decode rebuilds a Store from a buffer produced by Encode. Options configure
// the collaborators of the returned Store, exactly as with New.
//
// The buffer is validated before anything is adopted: indices must be
// contiguous, heights strictly increasing, the watermark at or above the
// newest height, and every address index entry must point at a retained
// transaction that involves the address. Any violation returns an error
// wrapping ErrDecode.
func Decode(data []byte, opts ...Option) (*Store, error) {
	s := New(opts...)
	if err := s.decode(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return s, nil
}

type accountEntry struct {
	address Address
	indices []TransactionIndex
}

func (s *Store) decode(data []byte) error {
	var (
		entries      []accountEntry
		nextIndex    uint64
		hasNextIndex bool
	)

	r := fieldReader{buf: data}
	for r.more() {
		num, typ, err := r.tag()
		if err != nil {
			return err
		}

		switch num {
		case fieldStoreTransactions:
			raw, err := r.bytes(num, typ)
			if err != nil {
				return err
			}

			tx, err := decodeTransaction(raw)
			if err != nil {
				return fmt.Errorf("transaction #%d: %w", s.transactions.len(), err)
			}

			if err := s.appendDecoded(tx); err != nil {
				return err
			}

		case fieldStoreSyncedUpTo:
			if s.syncedUpTo, err = r.varint(num, typ); err != nil {
				return err
			}
			s.hasSyncedUpTo = true

		case fieldStoreLastSyncTimestamp:
			if s.lastSyncTimestampNanos, err = r.varint(num, typ); err != nil {
				return err
			}

		case fieldStoreAccountTransactions:
			raw, err := r.bytes(num, typ)
			if err != nil {
				return err
			}

			entry, err := decodeAccountEntry(raw)
			if err != nil {
				return fmt.Errorf("account entry #%d: %w", len(entries), err)
			}
			entries = append(entries, entry)

		case fieldStoreNextIndex:
			if nextIndex, err = r.varint(num, typ); err != nil {
				return err
			}
			hasNextIndex = true

		default:
			if err := r.skip(num, typ); err != nil {
				return err
			}
		}
	}

	latest, nonEmpty := s.transactions.back()

	if hasNextIndex {
		if nonEmpty && nextIndex != latest.Index+1 {
			return fmt.Errorf("next index %d does not follow last transaction index %d", nextIndex, latest.Index)
		}
		s.transactions.next = nextIndex
	}

	if nonEmpty {
		if !s.hasSyncedUpTo {
			return errors.New("transactions present without a synced up to block height")
		}

		if s.syncedUpTo < latest.BlockHeight {
			return fmt.Errorf("synced up to block height %d is below latest transaction block height %d", s.syncedUpTo, latest.BlockHeight)
		}
	}

	return s.restoreAccountIndex(entries)
}

// appendDecoded appends tx after checking it continues the log.
func (s *Store) appendDecoded(tx Transaction) error {
	if !tx.Kind.IsValid() {
		return fmt.Errorf("transaction %d: invalid kind %d", tx.Index, tx.Kind)
	}

	switch tx.Transfer.Kind {
	case TransferKindBurn, TransferKindMint, TransferKindSend:
	default:
		return fmt.Errorf("transaction %d: invalid transfer kind %d", tx.Index, tx.Transfer.Kind)
	}

	if prev, ok := s.transactions.back(); ok {
		if prev.Index == ^TransactionIndex(0) || tx.Index != prev.Index+1 {
			return fmt.Errorf("transaction index %d does not follow %d", tx.Index, prev.Index)
		}

		if tx.BlockHeight <= prev.BlockHeight {
			return fmt.Errorf("transaction %d: block height %d is not above %d", tx.Index, tx.BlockHeight, prev.BlockHeight)
		}
	} else if tx.Index == ^TransactionIndex(0) {
		return fmt.Errorf("transaction index %d leaves no room for a successor", tx.Index)
	}

	s.transactions.append(tx)
	return nil
}

func (s *Store) restoreAccountIndex(entries []accountEntry) error {
	first, next := s.transactions.firstIndex(), s.transactions.nextIndex()

	for _, entry := range entries {
		if _, ok := s.accountTransactions.Lookup(entry.address); ok {
			return fmt.Errorf("duplicate account entry for %q", entry.address)
		}

		if len(entry.indices) == 0 {
			return fmt.Errorf("account entry for %q has no transactions", entry.address)
		}

		for i, index := range entry.indices {
			if i > 0 && index <= entry.indices[i-1] {
				return fmt.Errorf("account entry for %q: indices are not strictly increasing", entry.address)
			}

			if index < first || index >= next {
				return fmt.Errorf("account entry for %q: index %d is outside the retained window [%d, %d)", entry.address, index, first, next)
			}

			tx, _ := s.transactions.get(index)
			if tx.Transfer.From != entry.address && tx.Transfer.To != entry.address {
				return fmt.Errorf("account entry for %q: transaction %d does not involve the address", entry.address, index)
			}
		}

		s.accountTransactions.Set(entry.address, entry.indices)
	}

	return nil
}

func decodeTransaction(data []byte) (Transaction, error) {
	var tx Transaction

	r := fieldReader{buf: data}
	for r.more() {
		num, typ, err := r.tag()
		if err != nil {
			return Transaction{}, err
		}

		switch num {
		case fieldTxIndex:
			tx.Index, err = r.varint(num, typ)
		case fieldTxBlockHeight:
			tx.BlockHeight, err = r.varint(num, typ)
		case fieldTxTimestamp:
			tx.Timestamp, err = r.varint(num, typ)
		case fieldTxMemo:
			tx.Memo, err = r.varint(num, typ)
		case fieldTxTransfer:
			var raw []byte
			if raw, err = r.bytes(num, typ); err == nil {
				tx.Transfer, err = decodeTransfer(raw)
			}
		case fieldTxKind:
			var kind uint64
			if kind, err = r.varint(num, typ); err == nil {
				tx.Kind, err = narrowKind[TransactionKind](kind)
			}
		default:
			err = r.skip(num, typ)
		}

		if err != nil {
			return Transaction{}, err
		}
	}

	return tx, nil
}

func decodeTransfer(data []byte) (Transfer, error) {
	var t Transfer

	r := fieldReader{buf: data}
	for r.more() {
		num, typ, err := r.tag()
		if err != nil {
			return Transfer{}, err
		}

		switch num {
		case fieldTransferKind:
			var kind uint64
			if kind, err = r.varint(num, typ); err == nil {
				t.Kind, err = narrowKind[TransferKind](kind)
			}
		case fieldTransferFrom:
			t.From, err = r.string(num, typ)
		case fieldTransferTo:
			t.To, err = r.string(num, typ)
		case fieldTransferAmount:
			t.Amount, err = r.varint(num, typ)
		case fieldTransferFee:
			t.Fee, err = r.varint(num, typ)
		default:
			err = r.skip(num, typ)
		}

		if err != nil {
			return Transfer{}, fmt.Errorf("transfer: %w", err)
		}
	}

	return t, nil
}

func decodeAccountEntry(data []byte) (accountEntry, error) {
	var entry accountEntry

	r := fieldReader{buf: data}
	for r.more() {
		num, typ, err := r.tag()
		if err != nil {
			return accountEntry{}, err
		}

		switch num {
		case fieldEntryAddress:
			entry.address, err = r.string(num, typ)
		case fieldEntryIndices:
			var packed []byte
			if packed, err = r.bytes(num, typ); err == nil {
				entry.indices, err = decodePackedVarints(packed)
			}
		default:
			err = r.skip(num, typ)
		}

		if err != nil {
			return accountEntry{}, err
		}
	}

	if entry.address == "" {
		return accountEntry{}, errors.New("missing address")
	}

	return entry, nil
}

func decodePackedVarints(b []byte) ([]uint64, error) {
	var out []uint64
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}

		out = append(out, v)
		b = b[n:]
	}

	return out, nil
}

// narrowKind converts a decoded varint into a one-byte enum.
func narrowKind[K ~uint8](v uint64) (K, error) {
	if v > 0xff {
		return 0, fmt.Errorf("kind %d out of range", v)
	}

	return K(v), nil
}

// fieldReader walks the fields of a single protobuf message.
type fieldReader struct {
	buf []byte
}

func (r *fieldReader) more() bool {
	return len(r.buf) > 0
}

func (r *fieldReader) tag() (protowire.Number, protowire.Type, error) {
	num, typ, n := protowire.ConsumeTag(r.buf)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}

	r.buf = r.buf[n:]
	return num, typ, nil
}

func (r *fieldReader) varint(num protowire.Number, typ protowire.Type) (uint64, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("field %d: unexpected wire type %d", num, typ)
	}

	v, n := protowire.ConsumeVarint(r.buf)
	if n < 0 {
		return 0, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
	}

	r.buf = r.buf[n:]
	return v, nil
}

func (r *fieldReader) bytes(num protowire.Number, typ protowire.Type) ([]byte, error) {
	if typ != protowire.BytesType {
		return nil, fmt.Errorf("field %d: unexpected wire type %d", num, typ)
	}

	v, n := protowire.ConsumeBytes(r.buf)
	if n < 0 {
		return nil, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
	}

	r.buf = r.buf[n:]
	return v, nil
}

func (r *fieldReader) string(num protowire.Number, typ protowire.Type) (string, error) {
	v, err := r.bytes(num, typ)
	return string(v), err
}

func (r *fieldReader) skip(num protowire.Number, typ protowire.Type) error {
	n := protowire.ConsumeFieldValue(num, typ, r.buf)
	if n < 0 {
		return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
	}

	r.buf = r.buf[n:]
	return nil
}
