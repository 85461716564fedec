package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/audiarr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default config",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		if len(args) > 0 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}

		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path := configPath
		if path == "" {
			discovered, err := config.Discover()
			if err != nil {
				return err
			}
			path = discovered
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		if errs := cfg.Validate(); len(errs) > 0 {
			return &config.ConfigError{Path: path, Errors: errs}
		}

		fmt.Printf("%s: OK\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
}
