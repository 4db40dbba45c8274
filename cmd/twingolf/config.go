package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twin-golf/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings in effect after the search order and flags are
applied, as YAML. With --defaults the built-in settings file is printed.

Search order:
  --config <path>
  ~/.twingolf/config.yaml
  ./configs/twingolf.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in settings file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", sourceName(settingsSource))
	_, err = out.Write(data)
	return err
}
