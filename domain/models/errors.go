package models

import (
	"errors"
)

// Domain error types
var (
	// Record errors
	// ErrParseAmount is returned when an amount field is not a valid
	// fixed-precision decimal
	ErrParseAmount = errors.New("amount is not a valid fixed-precision decimal")

	// ErrMalformedRecord is returned when an input record is missing a
	// required field or carries an unknown transaction type
	ErrMalformedRecord = errors.New("malformed transaction record")

	// Processing errors
	// ErrDuplicateTx is returned when a deposit or withdrawal reuses an
	// already recorded transaction id
	ErrDuplicateTx = errors.New("transaction id already recorded")

	// ErrAccountLocked is returned when a deposit or withdrawal targets a
	// locked account
	ErrAccountLocked = errors.New("account is locked")

	// ErrInsufficientFunds is returned when a withdrawal would drive the
	// available balance negative
	ErrInsufficientFunds = errors.New("insufficient available funds")

	// ErrUnknownTx is returned when a dispute lifecycle record references a
	// transaction id that was never recorded
	ErrUnknownTx = errors.New("referenced transaction not found")

	// ErrClientMismatch is returned when a dispute lifecycle record
	// references a transaction belonging to a different client
	ErrClientMismatch = errors.New("referenced transaction belongs to another client")

	// ErrAlreadyDisputed is returned when a dispute targets a transaction
	// that is not in the normal state
	ErrAlreadyDisputed = errors.New("transaction is already under dispute or charged back")

	// ErrNotDisputed is returned when a resolve or chargeback targets a
	// transaction that is not under dispute
	ErrNotDisputed = errors.New("transaction is not under dispute")

	// ErrInvalidTransition is returned when a dispute state change is not
	// permitted from the entry's current state
	ErrInvalidTransition = errors.New("invalid dispute state transition")
)
