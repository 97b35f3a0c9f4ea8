package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arcanaland/twentyone/internal/records"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// recordsCmd represents the records command group
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show or manage the high score list",
	Long:  `Commands for the high score list: the best final cash amounts of past games.`,
}

// recordsListCmd represents the records ls command
var recordsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the high scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := loadLedger()
		if err != nil {
			return err
		}

		list := ledger.Records()
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No records yet. Finish a game with cash left to get on the list.")
			return nil
		}

		data := pterm.TableData{{"#", "Score"}}
		for i, score := range list {
			data = append(data, []string{"№" + strconv.Itoa(i+1), strconv.Itoa(score)})
		}
		return pterm.DefaultTable.
			WithHasHeader().
			WithRightAlignment().
			WithWriter(cmd.OutOrStdout()).
			WithData(data).
			Render()
	},
}

// recordsResetCmd represents the records reset command
var recordsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the high score list",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := loadLedger()
		if err != nil {
			return err
		}
		if err := ledger.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Records cleared.")
		return nil
	},
}

// recordsInitCmd represents the records init command
var recordsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty records file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.ResolveRecordsPath()
		if err := records.Init(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Records file initialized at:", path)
		return nil
	},
}

// loadLedger opens the records file named by the config
func loadLedger() (*records.Ledger, error) {
	path := cfg.ResolveRecordsPath()
	ledger, err := records.Load(path, records.WithLogger(logger))
	if errors.Is(err, records.ErrStorageUnavailable) {
		return nil, fmt.Errorf("%w\nrun 'twentyone records init' to create it", err)
	}
	return ledger, err
}

func init() {
	RootCmd.AddCommand(recordsCmd)
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsResetCmd)
	recordsCmd.AddCommand(recordsInitCmd)
}
