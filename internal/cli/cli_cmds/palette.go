package cli_cmds

import (
	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/payledger-go/internal/cli"
)

// GeneratePalette assembles the command set exposed by the root command
func GeneratePalette(params *cli.CmdParams) []*cobra.Command {

	// Core commands
	processCmd := NewProcess(params)

	// Utility commands
	versionCmd := NewVersion(params)

	// Return all commands
	return []*cobra.Command{
		processCmd,
		versionCmd,
	}
}
