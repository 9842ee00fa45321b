package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/soypat/fanmount/config"
	"github.com/soypat/fanmount/fastener"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	// Loaded before every command runs.
	cfg     config.Config
	catalog *fastener.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "fanmount",
	Short: "Fan mount geometry and fastener catalog",
	Long: "fanmount builds parametric fan-mount geometry.\n\n" +
		"It looks up fastener dimensions, converts thread units and plots\n" +
		"2D previews of arms, grills and fan panels.",
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(specCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "fanmount.yaml", "Configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level, overrides the configuration file")
}

func initializeApp(cmd *cobra.Command, args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	lvl, err := c.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	cfg = c

	catalog, err = fastener.Default()
	if err != nil {
		return fmt.Errorf("failed to load fastener catalog: %w", err)
	}
	log.Debug().Str("config", configPath).Int("segments", cfg.CurveSegments()).Msg("initialized")
	return nil
}
