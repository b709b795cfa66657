package accounts

// ActionKind names a multi-part follow-up action triggered by a transfer.
type ActionKind uint8

const (
	ActionKindUnknown ActionKind = iota
	ActionKindStakeNeuron
	ActionKindTopUpNeuron
	ActionKindCreateCanister
	ActionKindTopUpCanister
)

var actionKindNames = map[ActionKind]string{
	ActionKindStakeNeuron:    "stake_neuron",
	ActionKindTopUpNeuron:    "top_up_neuron",
	ActionKindCreateCanister: "create_canister",
	ActionKindTopUpCanister:  "top_up_canister",
}

// String returns the snake_case name of the action kind.
func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// ParseActionKind is the inverse of ActionKind.String.
func ParseActionKind(s string) (ActionKind, bool) {
	for k, name := range actionKindNames {
		if name == s {
			return k, true
		}
	}

	return ActionKindUnknown, false
}

// TransactionKind maps the action to the refined classification of the transfer that triggered it.
func (k ActionKind) TransactionKind() TransactionKind {
	switch k {
	case ActionKindStakeNeuron:
		return TransactionKindStakeNeuron
	case ActionKindTopUpNeuron:
		return TransactionKindTopUpNeuron
	case ActionKindCreateCanister:
		return TransactionKindCreateCanister
	case ActionKindTopUpCanister:
		return TransactionKindTopUpCanister
	default:
		return TransactionKindSend
	}
}

// PendingAction is a follow-up registered against a deposit address and
// waiting for funds to arrive.
type PendingAction struct {
	Principal Principal
	Kind      ActionKind
}

// Action describes a multi-part follow-up emitted during ingestion.
type Action struct {
	Kind   ActionKind `json:"kind"`
	From   Address    `json:"from"`
	To     Address    `json:"to"`
	Amount Amount     `json:"amount"`
	Memo   Memo       `json:"memo"`
}

// AddressBook resolves which addresses the store tracks.
//
// Both methods are called while the store holds its write lock, so
// implementations must answer from memory and must not block.
type AddressBook interface {
	// Principal returns the owner of a tracked address.
	// The boolean is false when the address is not tracked.
	Principal(address Address) (Principal, bool)

	// ResolvePending returns the pending action registered for a deposit
	// address, if the memo correlates with it.
	ResolvePending(address Address, memo Memo) (PendingAction, bool)
}

// ActionSink receives multi-part actions emitted by ingestion.
//
// Enqueue is fire-and-forget: it is called while the store holds its write
// lock and must return without waiting on the consumer.
type ActionSink interface {
	Enqueue(principal Principal, blockHeight BlockHeight, action Action)
}

// nopAddressBook tracks nothing, so every transfer is discarded.
type nopAddressBook struct{}

func (nopAddressBook) Principal(Address) (Principal, bool) { return "", false }

func (nopAddressBook) ResolvePending(Address, Memo) (PendingAction, bool) {
	return PendingAction{}, false
}

// nopActionSink drops every action.
type nopActionSink struct{}

func (nopActionSink) Enqueue(Principal, BlockHeight, Action) {}
