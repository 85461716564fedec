package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/audiarr/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently placed books",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.History.Path == "" {
			return errors.New("history is disabled; set history.path in the config")
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		placements, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(placements) == 0 {
			fmt.Println("No placements recorded.")
			return nil
		}

		for _, p := range placements {
			fmt.Printf("%s  %-6s  %s - %s\n",
				p.CreatedAt.Format("2006-01-02 15:04"), p.Mode, p.Author, p.Title)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum entries to show")
}
