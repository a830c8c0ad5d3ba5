package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/payledger-go/internal"
	"github.com/ZanzyTHEbar/payledger-go/internal/cli"
)

// NewVersion creates a version command for payledger
func NewVersion(params *cli.CmdParams) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of payledger",
		Long:  `Print the version information for payledger including build details.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "payledger")
			fmt.Fprintln(cmd.OutOrStdout(), "=========")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", internal.VersionInfo())
		},
	}

	return versionCmd
}
