package cmd

import (
	"fmt"
	"os"

	"mirrorcheck/core/config"
	"mirrorcheck/core/ledger"
	"mirrorcheck/core/logger"
	"mirrorcheck/core/transport"
	"mirrorcheck/feature/verify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe every source entry for unexpected availability",
	Long: `Runs only the probe pass: every entry of the source table that is not
already decided in the ledger is checked for existence at its remote target.
A live resource is flagged as "error: available"; a dead one is recorded
as n/a. Useful when no local files exist at all and the whole source list
is expected to be gone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		source, err := buildSource(cmd.Context(), srcFlag, cfg)
		if err != nil {
			return err
		}

		led, err := ledger.Open(ledgerPath(cfg))
		if err != nil {
			return err
		}
		defer led.Close()

		client, err := transport.NewClient(cfg.Transport)
		if err != nil {
			return err
		}

		svc := verify.NewService(
			source,
			led,
			verify.NewVerifier(client, cfg.Transport.ChunkSize),
			verify.NewProber(client),
			credentials(cfg),
			logg,
			os.Stdout,
		)

		// No files: the main pass is empty and the run is probe-only.
		_, err = svc.Run(cmd.Context(), nil)
		return err
	},
}

func init() {
	RootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringVarP(&srcFlag, "src", "s", "", "Source URL list file or s3://bucket/prefix")
	probeCmd.Flags().StringVarP(&ledgerFlag, "ledger", "r", "", "Ledger file to resume progress from")
	probeCmd.Flags().StringVarP(&userFlag, "user", "u", "", "Server username")
	probeCmd.Flags().StringVarP(&passFlag, "pass", "p", "", "Server password")
	_ = probeCmd.MarkFlagRequired("src")
}
