package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/kakeibo/internal/cli"
	"github.com/theirongolddev/kakeibo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Application configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Configuration",
		Rows: [][]string{
			{"Config file", config.Path()},
			{"Database", dbPath()},
			{"FX endpoint", cli.Dash(appCfg.FX.BaseURL)},
			{"Theme", appCfg.Appearance.Theme},
			{"Log level", appCfg.Log.Level},
		},
	}))
	if !config.Exists() {
		fmt.Println(cli.Muted("  No config file yet; defaults shown. Run `kakeibo config init` to create one."))
	}
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		fmt.Printf("  Config already exists at %s\n", config.Path())
		return nil
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.Path())
	return nil
}
