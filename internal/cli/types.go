package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/payledger-go/internal"
)

// CmdParams holds all dependencies needed by command handlers
type CmdParams struct {
	Config  *internal.Config
	Logger  zerolog.Logger
	Palette []*cobra.Command
	Use     string
	Alias   string
	Short   string
	Long    string
}

type CLICMD struct {
	Root *cobra.Command
}

func NewCMD(cmdRoot *cobra.Command) *CLICMD {
	return &CLICMD{
		Root: cmdRoot,
	}
}
