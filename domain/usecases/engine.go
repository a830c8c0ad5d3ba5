package usecases

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ZanzyTHEbar/payledger-go/domain/models"
	"github.com/ZanzyTHEbar/payledger-go/interfaces"
)

// RunStats counts the outcome of one engine run.
type RunStats struct {
	Processed int
	Applied   int
	Rejected  int
}

// Engine drives one pass over an input sequence. It owns the history store
// and account ledger for the lifetime of the run and is the only component
// that turns per-record errors into diagnostics; a bad record is reported
// and the run continues.
type Engine struct {
	history *HistoryStore
	ledger  *AccountLedger
	proc    *Processor
	logger  zerolog.Logger
	runID   string
}

// NewEngine creates an engine with fresh, empty stores.
func NewEngine(logger zerolog.Logger) *Engine {
	history := NewHistoryStore()
	ledger := NewAccountLedger()
	runID := uuid.New().String()

	return &Engine{
		history: history,
		ledger:  ledger,
		proc:    NewProcessor(history, ledger),
		logger:  logger.With().Str("run_id", runID).Logger(),
		runID:   runID,
	}
}

// RunID returns the unique id assigned to this engine run.
func (e *Engine) RunID() string {
	return e.runID
}

// Run consumes the source to exhaustion, applying each record in arrival
// order, and returns the final account table ordered by client id.
func (e *Engine) Run(src interfaces.RecordSource) ([]models.AccountSummary, RunStats) {
	var stats RunStats

	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		stats.Processed++

		if err != nil {
			stats.Rejected++
			e.logger.Warn().Err(err).Msg("Skipping malformed record")
			continue
		}

		if err := e.proc.Apply(*rec); err != nil {
			stats.Rejected++
			e.logger.Warn().
				Err(err).
				Str("kind", string(rec.Kind)).
				Uint16("client", uint16(rec.Client)).
				Uint32("tx", uint32(rec.Tx)).
				Msg("Record rejected")
			continue
		}

		stats.Applied++
	}

	e.logger.Info().
		Int("processed", stats.Processed).
		Int("applied", stats.Applied).
		Int("rejected", stats.Rejected).
		Int("accounts", e.ledger.Len()).
		Msg("Run complete")

	return e.ledger.Summaries(), stats
}
