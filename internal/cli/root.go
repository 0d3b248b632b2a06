// Package cli defines the quizd command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizd",
		Short:         "Quiz platform backend",
		Long:          "quizd serves the quiz platform HTTP API: registration, login, quiz management, scoring and leaderboards.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", os.Getenv("QUIZD_CONFIG"), "path to YAML config file")
	root.AddCommand(newServeCmd())
	return root
}

// Execute runs the CLI and returns a process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString("quizd: " + err.Error() + "\n")
		return 1
	}
	return 0
}
