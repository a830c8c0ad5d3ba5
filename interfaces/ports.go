// Package interfaces defines the ports between the ledger engine and its
// collaborators: the record decoder feeding it and the summary encoder
// consuming its output.
package interfaces

import (
	"github.com/ZanzyTHEbar/payledger-go/domain/models"
)

// RecordSource is a finite, ordered, non-restartable sequence of input
// records. Next returns io.EOF when the sequence is exhausted. Any other
// error describes a single malformed record; the source remains usable and
// the caller is expected to keep consuming.
type RecordSource interface {
	Next() (*models.TransactionRecord, error)
}

// SummaryWriter receives the final account table once the input sequence
// has been fully consumed.
type SummaryWriter interface {
	WriteSummaries(summaries []models.AccountSummary) error
}
