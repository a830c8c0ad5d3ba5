package services

import (
	"github.com/anthdm/hollywood/actor"
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/payledger-go/domain/usecases"
)

// ShardActor processes records for the subset of clients assigned to it.
// It owns its own history store and account ledger outright; nothing else
// touches them, so no locking is needed inside the actor.
type ShardActor struct {
	BaseActor
	history *usecases.HistoryStore
	ledger  *usecases.AccountLedger
	proc    *usecases.Processor
	stats   usecases.RunStats
}

// NewShardActor creates a shard actor with fresh, empty stores.
func NewShardActor(name string, logger zerolog.Logger) *ShardActor {
	history := usecases.NewHistoryStore()
	ledger := usecases.NewAccountLedger()

	return &ShardActor{
		BaseActor: NewBaseActor(name, logger),
		history:   history,
		ledger:    ledger,
		proc:      usecases.NewProcessor(history, ledger),
	}
}

// Receive implements the actor.Receiver interface
func (a *ShardActor) Receive(ctx *actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started:
		a.logger.Debug().Msg("Shard actor started")

	case RecordMsg:
		a.stats.Processed++

		if err := a.proc.Apply(msg.Rec); err != nil {
			a.stats.Rejected++
			a.logger.Warn().
				Err(err).
				Str("kind", string(msg.Rec.Kind)).
				Uint16("client", uint16(msg.Rec.Client)).
				Uint32("tx", uint32(msg.Rec.Tx)).
				Msg("Record rejected")
			return
		}

		a.stats.Applied++

	case SnapshotRequest:
		a.logger.Debug().
			Int("accounts", a.ledger.Len()).
			Int("processed", a.stats.Processed).
			Msg("Snapshot requested")

		ctx.Respond(SnapshotResponse{
			Summaries: a.ledger.Summaries(),
			Stats:     a.stats,
		})
	}
}
