package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"mirrorcheck/core/config"
	"mirrorcheck/core/logger"
	"mirrorcheck/core/middleware/rayid"
	"mirrorcheck/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve read-only ledger reports over HTTP",
	Long: `Starts a small HTTP server exposing the ledger as JSON: GET /summary for
outcome totals and GET /entries for the decided names. The server never takes
the ledger writer lock, so it can run alongside an active verification.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Optional API key check
		if cfg.Server.ApiKey != "" {
			app.Use(func(c *fiber.Ctx) error {
				if c.Get("X-Api-Key") != cfg.Server.ApiKey {
					return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid api key"})
				}
				return c.Next()
			})
		}

		// 4. Register Report Routes
		report.NewHandler(ledgerPath(cfg), logg).RegisterRoutes(app)

		// 5. Start Server
		go func() {
			logg.Info("Starting report server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down report server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&ledgerFlag, "ledger", "r", "", "Ledger file to serve")
}
