package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the labelctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "labelctl",
		Short:        "Operator tooling for the shipping label workflow",
		SilenceUsage: true,
	}

	root.AddCommand(replayCmd())
	return root
}
