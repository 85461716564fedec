package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "audiarr",
	Short: "Sync downloaded audiobooks into an AudioBookShelf library",
	Long: `audiarr - audiobook library automation

Reads the book manifest written by OpenAudible or Libation, moves newly
downloaded audiobooks into an author/series/title library layout, then
rescans the AudioBookShelf library and force-matches the new items
against the Audible metadata provider.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discover)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("audiarr {{.Version}}\n")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(lookupCmd)
}
