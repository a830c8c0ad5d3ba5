package usecases

import (
	"github.com/ZanzyTHEbar/payledger-go/domain/models"
)

// HistoryStore is the append-only record of every accepted deposit and
// withdrawal, keyed by transaction id. Entries are never removed; only
// their dispute state changes.
type HistoryStore struct {
	entries map[models.TxID]*models.HistoryEntry
}

// NewHistoryStore creates an empty history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		entries: make(map[models.TxID]*models.HistoryEntry),
	}
}

// Record inserts a new entry in the normal state. It fails with
// ErrDuplicateTx if the transaction id is already present.
func (s *HistoryStore) Record(tx models.TxID, client models.ClientID, kind models.RecordKind, amount models.Amount) error {
	if _, exists := s.entries[tx]; exists {
		return models.ErrDuplicateTx
	}

	s.entries[tx] = models.NewHistoryEntry(client, kind, amount)
	return nil
}

// Get looks up the entry for a transaction id. Absence is not an error;
// the caller decides what a missing entry means.
func (s *HistoryStore) Get(tx models.TxID) (*models.HistoryEntry, bool) {
	entry, ok := s.entries[tx]
	return entry, ok
}

// Has reports whether a transaction id has been recorded.
func (s *HistoryStore) Has(tx models.TxID) bool {
	_, ok := s.entries[tx]
	return ok
}

// SetDisputed moves the entry for tx into the disputed state.
func (s *HistoryStore) SetDisputed(tx models.TxID) error {
	entry, ok := s.entries[tx]
	if !ok {
		return models.ErrUnknownTx
	}

	return entry.MarkDisputed()
}

// ClearDisputed moves the entry for tx back to the normal state.
func (s *HistoryStore) ClearDisputed(tx models.TxID) error {
	entry, ok := s.entries[tx]
	if !ok {
		return models.ErrUnknownTx
	}

	return entry.ClearDisputed()
}

// Finalize moves the entry for tx into the terminal charged back state.
func (s *HistoryStore) Finalize(tx models.TxID) error {
	entry, ok := s.entries[tx]
	if !ok {
		return models.ErrUnknownTx
	}

	return entry.Finalize()
}

// Len returns the number of recorded entries.
func (s *HistoryStore) Len() int {
	return len(s.entries)
}
