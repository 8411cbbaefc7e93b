package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sensiblebit/pemscan"
	"github.com/sensiblebit/pemscan/internal"
	"github.com/sensiblebit/pemscan/internal/objstore"
	"github.com/spf13/cobra"
)

var (
	scanKinds       []string
	scanDBPath      string
	scanProfilePath string
	scanProfileName string
)

var scanCmd = &cobra.Command{
	Use:   "scan <path|inline-pem>",
	Short: "Scan for armored objects",
	Long:  "Scan a file, directory, or inline PEM text for armored certificates and keys. Prints a summary of what was decoded. Use --db to also persist a catalog.",
	Example: `  pemscan scan bundle.pem
  pemscan scan /etc/ssl/certs --kinds certificate
  pemscan scan bundle.pem --db catalog.sqlite
  pemscan scan "$(cat bundle.pem)"`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringSliceVarP(&scanKinds, "kinds", "k", nil, "Kinds to accept: certificate, private-key, rsa-private-key (default all)")
	scanCmd.Flags().StringVarP(&scanDBPath, "db", "d", "", "Persist the catalog to this SQLite file")
	scanCmd.Flags().StringVarP(&scanProfilePath, "profile", "c", "", "Path to a scan profile YAML file")
	scanCmd.Flags().StringVar(&scanProfileName, "profile-name", "", "Named profile to use from the profile file")
}

func runScan(cmd *cobra.Command, args []string) error {
	filter, err := scanFilter()
	if err != nil {
		return err
	}

	store := objstore.NewMemStore()
	report := &internal.ScanReport{}

	input := args[0]
	info, statErr := os.Stat(input)
	switch {
	case statErr == nil && info.IsDir():
		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if err := scanOne(path, filter, store, report); err != nil {
				slog.Warn("skipping source", "path", path, "error", err)
				report.FailedFiles++
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("walking %s: %w", input, err)
		}
	default:
		// A single file, or inline armored text; pemscan.Load sorts
		// out which.
		if err := scanOne(input, filter, store, report); err != nil {
			return err
		}
	}

	if scanDBPath != "" {
		if err := objstore.SaveToSQLite(store, scanDBPath); err != nil {
			return fmt.Errorf("persisting catalog: %w", err)
		}
	}

	printSummary(report)
	return nil
}

// scanFilter builds the decode filter from --profile or --kinds.
func scanFilter() (pemscan.Filter, error) {
	if scanProfilePath != "" {
		profile, err := internal.LoadProfile(scanProfilePath, scanProfileName)
		if err != nil {
			return nil, fmt.Errorf("loading scan profile: %w", err)
		}
		return profile.Filter()
	}
	mask, err := internal.ParseKinds(scanKinds)
	if err != nil {
		return nil, err
	}
	return pemscan.KindFilter(mask), nil
}

// scanOne loads a single source and folds the result into the store and
// report. source may be a path or inline armored text.
func scanOne(source string, filter pemscan.Filter, store *objstore.MemStore, report *internal.ScanReport) error {
	set, err := pemscan.Load(source, filter)
	if err != nil {
		return err
	}
	label := source
	if pemscan.IsArmored(source) {
		label = "(inline)"
	}
	if err := store.AddSet(set, label); err != nil {
		return err
	}
	report.AddSet(set)
	slog.Debug("scanned source", "source", label, "objects", set.Len(), "bytes", set.TotalBytes())
	return nil
}

// printSummary writes the human summary to stdout. When stdout is not a
// terminal only the machine-friendly count line is printed, so piped output
// stays stable.
func printSummary(report *internal.ScanReport) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Printf("objects=%d bytes=%d failed=%d\n", report.Objects(), report.TotalBytes, report.FailedFiles)
		return
	}
	fmt.Print(report.Summary())
}
