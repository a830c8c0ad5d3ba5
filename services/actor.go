// Package services provides the sharded ledger engine using the hollywood
// actor model. Each shard actor owns a disjoint subset of clients, so
// shards share no state and per-client record order is preserved by the
// actor's inbox.
package services

import (
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/payledger-go/domain/models"
	"github.com/ZanzyTHEbar/payledger-go/domain/usecases"
)

// BaseActor provides common functionality for all actors
type BaseActor struct {
	logger zerolog.Logger
	name   string
}

// NewBaseActor creates a new base actor with the given name and logger
func NewBaseActor(name string, logger zerolog.Logger) BaseActor {
	return BaseActor{
		name:   name,
		logger: logger.With().Str("actor", name).Logger(),
	}
}

// RecordMsg carries one input record to the shard owning its client
type RecordMsg struct {
	Rec models.TransactionRecord
}

// SnapshotRequest asks a shard for its final account table. The fan-out
// loop sends it after the last record, so the FIFO inbox guarantees the
// snapshot reflects the whole input.
type SnapshotRequest struct{}

// SnapshotResponse is the shard's final account table and its counters
type SnapshotResponse struct {
	Summaries []models.AccountSummary
	Stats     usecases.RunStats
}
