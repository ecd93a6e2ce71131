package cmd

import (
	"errors"
	"fmt"
	"os"

	"mirrorcheck/core/config"
	"mirrorcheck/core/ledger"
	"mirrorcheck/feature/verify"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the outcome totals recorded in the ledger",
	Long: `Replays the ledger and prints the same "loaded:" summary a verification
run would start with, without touching the network or taking the ledger
lock. Safe to run while a verification is in progress.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := ledgerPath(cfg)
		entries, err := ledger.Load(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Printf("no ledger at %s\n", path)
				return nil
			}
			return err
		}

		counters := verify.Counters{}
		for _, e := range entries {
			counters.Observe(e.Status)
		}
		fmt.Println(counters.Summary("loaded"))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&ledgerFlag, "ledger", "r", "", "Ledger file to inspect")
}
