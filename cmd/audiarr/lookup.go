package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/audiarr/internal/ai"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <title>",
	Short: "Look up book metadata via the configured AI provider",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.AI == nil {
			return errors.New("no [ai] section configured")
		}

		var provider ai.Provider
		switch strings.ToLower(cfg.AI.Provider) {
		case "openai":
			provider = ai.NewOpenAI(cfg.AI.APIKey)
		case "perplexity":
			provider = ai.NewPerplexity(cfg.AI.APIKey)
		default:
			return fmt.Errorf("unknown ai provider %q", cfg.AI.Provider)
		}
		if cfg.AI.BaseURL != "" {
			provider = ai.NewCompatible(cfg.AI.Provider, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.APIKey)
		}

		title := strings.Join(args, " ")
		info, err := provider.LookupBook(cmd.Context(), title)
		if err != nil {
			return err
		}

		fmt.Printf("Author:   %s\n", info.Author)
		fmt.Printf("Title:    %s\n", info.Title)
		if info.Series != "" {
			fmt.Printf("Series:   %s", info.Series)
			if info.Sequence != "" {
				fmt.Printf(" #%s", info.Sequence)
			}
			fmt.Println()
		}
		return nil
	},
}
