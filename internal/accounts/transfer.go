package accounts

import "fmt"

type (
	// Address is a ledger account identifier, as reported by the remote ledger.
	Address = string

	// Principal identifies the owner that registered one or more tracked addresses.
	Principal = string

	// Memo is the opaque correlation tag attached to a transfer.
	Memo = uint64

	// Amount is a token quantity in the ledger's smallest unit.
	Amount = uint64

	// BlockHeight is the remote ledger's position of a block.
	BlockHeight = uint64

	// TransactionIndex is the dense, locally assigned sequence number of a retained transaction.
	TransactionIndex = uint64
)

// TransferKind discriminates the three transfer shapes produced by the ledger.
type TransferKind uint8

const (
	TransferKindUnknown TransferKind = iota
	TransferKindBurn                 // funds removed from circulation
	TransferKindMint                 // funds created
	TransferKindSend                 // funds moved between two addresses
)

// String returns the lowercase name of the transfer kind.
func (k TransferKind) String() string {
	switch k {
	case TransferKindBurn:
		return "burn"
	case TransferKindMint:
		return "mint"
	case TransferKindSend:
		return "send"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Transfer is the payload of a ledger block.
//
// Which address fields are meaningful depends on Kind: a burn only has From,
// a mint only has To, and a send has both plus a Fee.
type Transfer struct {
	Kind   TransferKind `json:"kind"`
	From   Address      `json:"from,omitempty"`
	To     Address      `json:"to,omitempty"`
	Amount Amount       `json:"amount"`
	Fee    Amount       `json:"fee,omitempty"`
}

// Burn builds a burn transfer.
func Burn(from Address, amount Amount) Transfer {
	return Transfer{Kind: TransferKindBurn, From: from, Amount: amount}
}

// Mint builds a mint transfer.
func Mint(to Address, amount Amount) Transfer {
	return Transfer{Kind: TransferKindMint, To: to, Amount: amount}
}

// Send builds a transfer between two addresses.
func Send(from, to Address, amount, fee Amount) Transfer {
	return Transfer{Kind: TransferKindSend, From: from, To: to, Amount: amount, Fee: fee}
}

// TransactionKind is the classification resolved for a retained transaction.
// The zero value means no classification was resolved.
type TransactionKind uint8

const (
	TransactionKindUnknown TransactionKind = iota
	TransactionKindBurn
	TransactionKindMint
	TransactionKindSend
	TransactionKindStakeNeuron
	TransactionKindTopUpNeuron
	TransactionKindCreateCanister
	TransactionKindTopUpCanister
)

var transactionKindNames = map[TransactionKind]string{
	TransactionKindBurn:           "burn",
	TransactionKindMint:           "mint",
	TransactionKindSend:           "send",
	TransactionKindStakeNeuron:    "stake_neuron",
	TransactionKindTopUpNeuron:    "top_up_neuron",
	TransactionKindCreateCanister: "create_canister",
	TransactionKindTopUpCanister:  "top_up_canister",
}

// String returns the snake_case name of the transaction kind.
func (k TransactionKind) String() string {
	if name, ok := transactionKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// IsValid reports whether k is a known kind. TransactionKindUnknown is valid and means "unset".
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindUnknown || transactionKindNames[k] != ""
}

// Transaction is a retained ledger transfer. It is immutable once appended to the store.
type Transaction struct {
	Index       TransactionIndex `json:"index"`
	BlockHeight BlockHeight      `json:"block_height"`
	Timestamp   uint64           `json:"timestamp_nanos"`
	Memo        Memo             `json:"memo"`
	Transfer    Transfer         `json:"transfer"`
	Kind        TransactionKind  `json:"kind"`
}
