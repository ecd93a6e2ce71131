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

var (
	srcFlag    string
	ledgerFlag string
	userFlag   string
	passFlag   string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify FILE...",
	Short: "Verify local files against their remote sources",
	Long: `Streams each remote source against the matching local file and classifies
it as good, bad or error. Sources left unclaimed after all files are processed
are probed for unexpected availability. Every decision is appended to the
ledger; names already decided in an earlier run are skipped.`,
	Args: cobra.MinimumNArgs(1),
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

		_, err = svc.Run(cmd.Context(), args)
		return err
	},
}

// ledgerPath resolves the ledger location: flag first, then configuration.
func ledgerPath(cfg *config.Config) string {
	if ledgerFlag != "" {
		return ledgerFlag
	}
	return cfg.Ledger.Path
}

// credentials merges flag and configured credentials; flags win. Returns nil
// when no credentials are set at all, so anonymous requests stay anonymous.
func credentials(cfg *config.Config) *transport.Credentials {
	user := userFlag
	if user == "" {
		user = cfg.Transport.Username
	}
	pass := passFlag
	if pass == "" {
		pass = cfg.Transport.Password
	}
	if user == "" && pass == "" {
		return nil
	}
	return &transport.Credentials{Username: user, Password: pass}
}

func init() {
	RootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&srcFlag, "src", "s", "", "Source URL list file, s3://bucket/prefix, or template string")
	verifyCmd.Flags().StringVarP(&ledgerFlag, "ledger", "r", "", "Ledger file to resume progress from")
	verifyCmd.Flags().StringVarP(&userFlag, "user", "u", "", "Server username")
	verifyCmd.Flags().StringVarP(&passFlag, "pass", "p", "", "Server password")
	_ = verifyCmd.MarkFlagRequired("src")
}
