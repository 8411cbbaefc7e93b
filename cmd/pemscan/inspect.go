package main

import (
	"fmt"

	"github.com/sensiblebit/pemscan/internal"
	"github.com/spf13/cobra"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <path|inline-pem>",
	Short: "Display decoded object details",
	Long:  "Show the kind, length, and SHA-256 digest of every armored object in a file or inline text. Payloads are never parsed.",
	Example: `  pemscan inspect bundle.pem
  pemscan inspect bundle.pem --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "Output format: text or json")
}

func runInspect(cmd *cobra.Command, args []string) error {
	results, err := internal.InspectSource(args[0])
	if err != nil {
		return err
	}

	output, err := internal.FormatInspectResults(results, inspectFormat)
	if err != nil {
		return err
	}

	fmt.Print(output)
	return nil
}
