package report

import (
	"strings"

	"mirrorcheck/core/ledger"
	"mirrorcheck/core/logger"
	"mirrorcheck/feature/verify"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for ledger reports.
type Handler struct {
	ledgerPath string
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler reading the ledger at ledgerPath.
func NewHandler(ledgerPath string, logger *zap.Logger) *Handler {
	return &Handler{ledgerPath: ledgerPath, logger: logger}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/summary", h.HandleSummary)
	app.Get("/entries", h.HandleEntries)
}

// HandleSummary returns the outcome counters folded from the ledger.
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	entries, err := ledger.Load(h.ledgerPath)
	if err != nil {
		l.Error("failed to load ledger", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	counters := verify.Counters{}
	for _, e := range entries {
		counters.Observe(e.Status)
	}

	return c.JSON(fiber.Map{
		"good":  counters.Good,
		"bad":   counters.Bad,
		"na":    counters.NA,
		"error": counters.Error,
		"total": len(entries),
	})
}

// HandleEntries returns the decided entries, optionally filtered by the
// status query parameter (good, bad, n/a or error).
func (h *Handler) HandleEntries(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	entries, err := ledger.Load(h.ledgerPath)
	if err != nil {
		l.Error("failed to load ledger", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if filter := c.Query("status"); filter != "" {
		filtered := make([]ledger.Entry, 0, len(entries))
		for _, e := range entries {
			if matchesStatus(e.Status, filter) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if entries == nil {
		entries = []ledger.Entry{}
	}

	return c.JSON(entries)
}

// matchesStatus applies the same classification the counters use: exact
// match for the fixed tokens, prefix match for error.
func matchesStatus(status, filter string) bool {
	if filter == "error" {
		return strings.HasPrefix(status, "error")
	}
	return status == filter
}
