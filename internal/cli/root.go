// Package cli implements the methodtree command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Tests build a fresh tree per run.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "methodtree",
		Short:         "Radix-tree route table tools and stub HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "routes.yaml", "route configuration file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newRoutesCmd())
	root.AddCommand(newMatchCmd())
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "methodtree:", err)
		os.Exit(1)
	}
}
