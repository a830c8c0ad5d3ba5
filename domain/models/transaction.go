package models

// ClientID identifies a client account. Ids are assigned by the upstream
// payment system.
type ClientID uint16

// TxID identifies a single deposit or withdrawal. Ids are globally unique
// across all clients; uniqueness is guaranteed by the input, not re-derived
// here.
type TxID uint32

// RecordKind defines the type of an input transaction record
type RecordKind string

const (
	// RecordDeposit credits funds to a client account
	RecordDeposit RecordKind = "deposit"

	// RecordWithdrawal debits funds from a client account
	RecordWithdrawal RecordKind = "withdrawal"

	// RecordDispute places a prior transaction's funds on hold
	RecordDispute RecordKind = "dispute"

	// RecordResolve releases a disputed transaction's funds back
	RecordResolve RecordKind = "resolve"

	// RecordChargeback reverses a disputed transaction and locks the account
	RecordChargeback RecordKind = "chargeback"
)

// CarriesAmount reports whether records of this kind have an amount field.
// Dispute lifecycle records reference a prior transaction and carry none.
func (k RecordKind) CarriesAmount() bool {
	return k == RecordDeposit || k == RecordWithdrawal
}

// Valid reports whether k is one of the five known record kinds.
func (k RecordKind) Valid() bool {
	switch k {
	case RecordDeposit, RecordWithdrawal, RecordDispute, RecordResolve, RecordChargeback:
		return true
	}
	return false
}

// TransactionRecord is one input record as presented by the decoder.
// Amount is nil for dispute, resolve and chargeback records.
type TransactionRecord struct {
	Kind   RecordKind
	Client ClientID
	Tx     TxID
	Amount *Amount
}

// DisputeState defines the dispute lifecycle state of a history entry
type DisputeState string

const (
	// DisputeStateNormal is the initial state of every accepted transaction
	DisputeStateNormal DisputeState = "normal"

	// DisputeStateDisputed marks a transaction whose funds are on hold
	DisputeStateDisputed DisputeState = "disputed"

	// DisputeStateChargedBack is terminal; no further transitions exist
	DisputeStateChargedBack DisputeState = "charged_back"
)

// HistoryEntry is the stored record of an accepted deposit or withdrawal.
// Entries are never deleted; only State changes, following
// normal -> disputed -> {normal, charged_back}.
type HistoryEntry struct {
	Client ClientID
	Kind   RecordKind
	Amount Amount
	State  DisputeState
}

// NewHistoryEntry creates a history entry in the normal state.
func NewHistoryEntry(client ClientID, kind RecordKind, amount Amount) *HistoryEntry {
	return &HistoryEntry{
		Client: client,
		Kind:   kind,
		Amount: amount,
		State:  DisputeStateNormal,
	}
}

// MarkDisputed moves the entry from normal to disputed.
func (e *HistoryEntry) MarkDisputed() error {
	if e.State != DisputeStateNormal {
		return ErrInvalidTransition
	}

	e.State = DisputeStateDisputed
	return nil
}

// ClearDisputed moves the entry from disputed back to normal.
func (e *HistoryEntry) ClearDisputed() error {
	if e.State != DisputeStateDisputed {
		return ErrInvalidTransition
	}

	e.State = DisputeStateNormal
	return nil
}

// Finalize moves the entry from disputed to the terminal charged back
// state.
func (e *HistoryEntry) Finalize() error {
	if e.State != DisputeStateDisputed {
		return ErrInvalidTransition
	}

	e.State = DisputeStateChargedBack
	return nil
}
