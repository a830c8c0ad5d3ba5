package services

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/anthdm/hollywood/actor"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ZanzyTHEbar/payledger-go/domain/models"
	"github.com/ZanzyTHEbar/payledger-go/domain/usecases"
	"github.com/ZanzyTHEbar/payledger-go/interfaces"
)

// snapshotTimeout bounds how long the gather phase waits for a shard to
// drain its inbox and answer.
const snapshotTimeout = 30 * time.Second

// ShardedEngine distributes records across shard actors keyed by client
// id. Records for one client always land on the same shard in arrival
// order, which is the only ordering the ledger rules depend on.
type ShardedEngine struct {
	shards int
	logger zerolog.Logger
	runID  string
}

// NewShardedEngine creates an engine that fans records out over the given
// number of shards. Shards must be at least 1.
func NewShardedEngine(shards int, logger zerolog.Logger) (*ShardedEngine, error) {
	if shards < 1 {
		return nil, fmt.Errorf("shard count must be at least 1, got %d", shards)
	}

	runID := uuid.New().String()

	return &ShardedEngine{
		shards: shards,
		logger: logger.With().Str("run_id", runID).Logger(),
		runID:  runID,
	}, nil
}

// RunID returns the unique id assigned to this engine run.
func (e *ShardedEngine) RunID() string {
	return e.runID
}

// Run consumes the source to exhaustion, routing each record to the shard
// owning its client, then gathers and merges the shard tables. The merged
// table is ordered by client id, identical to the sequential engine's
// output for the same input.
func (e *ShardedEngine) Run(src interfaces.RecordSource) ([]models.AccountSummary, usecases.RunStats, error) {
	system, err := actor.NewEngine(actor.NewEngineConfig())
	if err != nil {
		return nil, usecases.RunStats{}, fmt.Errorf("failed to create actor engine: %w", err)
	}

	pids := make([]*actor.PID, e.shards)
	for i := 0; i < e.shards; i++ {
		shard := NewShardActor(fmt.Sprintf("ledger_shard_%d", i), e.logger)
		pids[i] = system.SpawnFunc(shard.Receive, fmt.Sprintf("ledger_shard_%d", i))
	}

	var decodeStats usecases.RunStats

	// Fan-out runs on this goroutine alone, so each shard's inbox sees its
	// client's records in arrival order.
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			decodeStats.Processed++
			decodeStats.Rejected++
			e.logger.Warn().Err(err).Msg("Skipping malformed record")
			continue
		}

		system.Send(pids[int(rec.Client)%e.shards], RecordMsg{Rec: *rec})
	}

	var (
		g         errgroup.Group
		mu        sync.Mutex
		summaries []models.AccountSummary
		stats     = decodeStats
	)

	for _, pid := range pids {
		currentPID := pid

		g.Go(func() error {
			result, err := system.Request(currentPID, SnapshotRequest{}, snapshotTimeout).Result()
			if err != nil {
				return fmt.Errorf("shard %s did not answer snapshot request: %w", currentPID.ID, err)
			}

			response, ok := result.(SnapshotResponse)
			if !ok {
				return fmt.Errorf("shard %s returned unexpected response %T", currentPID.ID, result)
			}

			mu.Lock()
			summaries = append(summaries, response.Summaries...)
			stats.Processed += response.Stats.Processed
			stats.Applied += response.Stats.Applied
			stats.Rejected += response.Stats.Rejected
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	// Shards own disjoint clients, so a plain sort is enough to merge.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Client < summaries[j].Client
	})

	e.logger.Info().
		Int("shards", e.shards).
		Int("processed", stats.Processed).
		Int("applied", stats.Applied).
		Int("rejected", stats.Rejected).
		Int("accounts", len(summaries)).
		Msg("Run complete")

	return summaries, stats, nil
}
