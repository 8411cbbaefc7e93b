package main

import (
	"github.com/sensiblebit/pemscan/internal"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "pemscan",
	Short: "PEM armor decoder",
	Long:  "Decode certificates and private keys from PEM-armored files or inline text, catalog them, and report what was found — without interpreting the binary payloads.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetupLogger(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
}
