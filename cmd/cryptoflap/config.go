package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crypto-flap/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Config search order:
  1. --config <path>
  2. ~/.cryptoflap/config.yaml
  3. ./configs/cryptoflap.yaml
  4. Built-in defaults

The output is a complete config file and can be saved and edited.

Examples:
  cryptoflap config > ~/.cryptoflap/config.yaml
  cryptoflap config --config ./my-flap.yaml
  cryptoflap config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
