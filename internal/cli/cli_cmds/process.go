package cli_cmds

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/payledger-go/adapters/csvio"
	"github.com/ZanzyTHEbar/payledger-go/domain/models"
	"github.com/ZanzyTHEbar/payledger-go/domain/usecases"
	"github.com/ZanzyTHEbar/payledger-go/internal/cli"
	"github.com/ZanzyTHEbar/payledger-go/services"
)

// NewProcess creates the process command, the engine's single pass: read
// transaction records from the input file, apply them in order, and write
// the final account table to stdout. Per-record rejections go to stderr
// and never change the exit status; only a fatal condition (e.g. an
// unreadable input file) does.
func NewProcess(params *cli.CmdParams) *cobra.Command {
	shards := params.Config.Engine.Shards
	precision := params.Config.Output.Precision

	processCmd := &cobra.Command{
		Use:   "process <input.csv>",
		Short: "Process a transaction log and print the final account table",
		Long: `Process reads an ordered CSV sequence of deposits, withdrawals,
disputes, resolves and chargebacks, applies each record against the
per-client ledger, and prints one summary row per client.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("cannot open input file %s: %w", args[0], err)
			}
			defer file.Close()

			source := csvio.NewReader(file)

			var summaries []models.AccountSummary
			if shards > 0 {
				engine, err := services.NewShardedEngine(shards, params.Logger)
				if err != nil {
					return err
				}

				summaries, _, err = engine.Run(source)
				if err != nil {
					return fmt.Errorf("sharded run failed: %w", err)
				}
			} else {
				summaries, _ = usecases.NewEngine(params.Logger).Run(source)
			}

			writer := csvio.NewWriter(cmd.OutOrStdout(), precision)
			if err := writer.WriteSummaries(summaries); err != nil {
				return fmt.Errorf("failed to write account table: %w", err)
			}

			return nil
		},
	}

	processCmd.Flags().IntVar(&shards, "shards", shards,
		"number of worker shards; 0 processes records on a single thread")
	processCmd.Flags().Int32Var(&precision, "precision", precision,
		"decimal places in rendered amounts")

	return processCmd
}
