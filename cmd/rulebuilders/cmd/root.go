package cmd

import (
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configFile string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "rulebuilders",
		Short:         "Customer catalog queries built from composable rules",
		Long:          `rulebuilders selects and labels customers of an in-memory catalog using rules composed from predicates.`,
		Version:       Version,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "json", "log format (json, text)")

	rootCmd.AddCommand(newCustomersCmd(flags))
	rootCmd.AddCommand(newCustomerCmd(flags))

	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}
