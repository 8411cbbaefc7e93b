package main

import (
	"fmt"

	"github.com/sensiblebit/pemscan/internal/objstore"
	"github.com/spf13/cobra"
)

var listDBPath string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a persisted catalog",
	Long:  "Load a catalog previously written by scan --db and print its records.",
	Example: `  pemscan list --db catalog.sqlite`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDBPath, "db", "d", "", "SQLite catalog file to read")
	_ = listCmd.MarkFlagRequired("db")
}

func runList(cmd *cobra.Command, args []string) error {
	store := objstore.NewMemStore()
	if err := objstore.LoadFromSQLite(store, listDBPath); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	for _, rec := range store.All() {
		fmt.Printf("%-16s %8d bytes  %s  %s\n", rec.Kind, rec.Length, rec.SHA256[:16], rec.Source)
	}
	sum := store.Summarize()
	fmt.Printf("%d objects (%d certificates, %d private keys, %d RSA keys), %d bytes\n",
		store.Len(), sum.Certificates, sum.PrivateKeys, sum.RSAKeys, sum.TotalBytes)
	return nil
}
