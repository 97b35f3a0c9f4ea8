package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/twentyone/internal/config"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfg    *config.Config
	logger *log.Logger

	logLevel string
	noColor  bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "twentyone",
	Short: "A short-deck game of twenty-one in your terminal",
	Long: `Twentyone is a blackjack-style card game played with a 36-card deck (six to ace).
Jacks count 2, queens 3, kings 4, aces 11 or 1. Two aces or five picture cards make 21.
Your best final cash amounts are kept in a high score list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          "twentyone",
		})

		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		logger.Debug("loaded config", "path", config.GetConfigFilePath(), "records", cfg.ResolveRecordsPath())

		if noColor || !cfg.Color || !term.IsTerminal(int(os.Stdout.Fd())) {
			color.NoColor = true
			pterm.DisableColor()
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
