package cmd

import (
	"github.com/spf13/cobra"
	"tern/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive parser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Start(cfg.History, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
