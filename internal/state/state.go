// Package state owns the mirror's application state and its durable snapshot.
//
// A snapshot is the accounts store encoding wrapped in a versioned envelope
// and compressed with zstd:
//
//	zstd( field 1: version (varint), field 2: accounts store (bytes) )
//
// Snapshots are written on shutdown and read back on start, so a restarted
// mirror resumes from its watermark instead of re-reading the ledger.
package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gabapcia/ledgermirror/internal/accounts"
)

const (
	envelopeVersion = 1

	fieldVersion  protowire.Number = 1
	fieldAccounts protowire.Number = 2

	// maxDecodedSize bounds the memory a single snapshot may expand to.
	maxDecodedSize = 1 << 30
)

var (
	// ErrSnapshotNotFound is returned by SnapshotStorage when nothing was saved yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrUnsupportedVersion is returned when the envelope version is missing or unknown.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
)

// SnapshotStorage keeps the latest snapshot.
type SnapshotStorage interface {
	// SaveState overwrites the stored snapshot.
	SaveState(ctx context.Context, data []byte) error

	// LoadState returns the stored snapshot or ErrSnapshotNotFound.
	LoadState(ctx context.Context) ([]byte, error)
}

// State is the root of everything the mirror keeps in memory.
type State struct {
	Accounts *accounts.Store
}

// New wraps store.
func New(store *accounts.Store) *State {
	return &State{Accounts: store}
}

// Encode returns the compressed, versioned snapshot of the state.
func (s *State) Encode() []byte {
	var envelope []byte
	envelope = protowire.AppendTag(envelope, fieldVersion, protowire.VarintType)
	envelope = protowire.AppendVarint(envelope, envelopeVersion)
	envelope = protowire.AppendTag(envelope, fieldAccounts, protowire.BytesType)
	envelope = protowire.AppendBytes(envelope, s.Accounts.Encode())

	return encoder.EncodeAll(envelope, nil)
}

// Decode parses a snapshot produced by Encode. The options configure the
// decoded accounts store. Every failure wraps accounts.ErrDecode.
func Decode(data []byte, opts ...accounts.Option) (*State, error) {
	envelope, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress: %w", accounts.ErrDecode, err)
	}

	var (
		version    uint64
		hasVersion bool
		payload    []byte
	)

	for len(envelope) > 0 {
		num, typ, n := protowire.ConsumeTag(envelope)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", accounts.ErrDecode, protowire.ParseError(n))
		}
		envelope = envelope[n:]

		switch {
		case num == fieldVersion && typ == protowire.VarintType:
			version, n = protowire.ConsumeVarint(envelope)
			hasVersion = true
		case num == fieldAccounts && typ == protowire.BytesType:
			payload, n = protowire.ConsumeBytes(envelope)
		default:
			n = protowire.ConsumeFieldValue(num, typ, envelope)
		}

		if n < 0 {
			return nil, fmt.Errorf("%w: %w", accounts.ErrDecode, protowire.ParseError(n))
		}
		envelope = envelope[n:]
	}

	if !hasVersion || version != envelopeVersion {
		return nil, fmt.Errorf("%w: %w: %d", accounts.ErrDecode, ErrUnsupportedVersion, version)
	}

	store, err := accounts.Decode(payload, opts...)
	if err != nil {
		return nil, err
	}

	return New(store), nil
}

// Replace swaps the content of s for the content of other. The accounts store
// keeps its own address book, action sink and clock.
func (s *State) Replace(other *State) {
	s.Accounts.Replace(other.Accounts)
}

// Restore loads the latest snapshot from storage into s. A missing snapshot
// leaves s untouched. A corrupt snapshot is an error and s is left untouched.
func (s *State) Restore(ctx context.Context, storage SnapshotStorage) error {
	data, err := storage.LoadState(ctx)
	if errors.Is(err, ErrSnapshotNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	restored, err := Decode(data)
	if err != nil {
		return err
	}

	s.Replace(restored)
	return nil
}

// Persist saves a snapshot of s to storage.
func (s *State) Persist(ctx context.Context, storage SnapshotStorage) error {
	if err := storage.SaveState(ctx, s.Encode()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}
