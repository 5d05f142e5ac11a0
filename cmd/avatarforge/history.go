package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vmunix/avatarforge/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversion outcomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.History.Path
		if path == "" {
			path = filepath.Join(cfg.Dirs.Output, "history.db")
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("no history database at %s", path)
		}

		store, err := history.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No conversions recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tASSET\tOUTCOME\tREASON")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Asset, e.Outcome, e.Reason)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum entries to show")
}
