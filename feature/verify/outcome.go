package verify

import (
	"fmt"
	"strings"
)

// Kind enumerates the verification outcome classes.
type Kind int

const (
	// Good means remote and local content matched exactly.
	Good Kind = iota
	// Bad means the content diverged in bytes or length.
	Bad
	// NotAvailable means a probed resource does not exist remotely.
	NotAvailable
	// Error means the attempt failed (transport failure, missing source,
	// or an unexpectedly live resource).
	Error
)

// Outcome classifies a single verification or probe attempt.
type Outcome struct {
	Kind Kind
	// Message is populated only for Error outcomes.
	Message string
}

// Errorf builds an Error outcome with a formatted message.
func Errorf(format string, args ...any) Outcome {
	return Outcome{Kind: Error, Message: fmt.Sprintf(format, args...)}
}

// Status renders the outcome as its fixed ledger token.
func (o Outcome) Status() string {
	switch o.Kind {
	case Good:
		return "good"
	case Bad:
		return "bad"
	case NotAvailable:
		return "n/a"
	default:
		return "error: " + o.Message
	}
}

// Counters accumulates outcome totals across a run, including totals seeded
// from ledger replay.
type Counters struct {
	Good  int `json:"good"`
	Bad   int `json:"bad"`
	NA    int `json:"na"`
	Error int `json:"error"`
}

// Observe folds one status token into the counters. Replayed ledger statuses
// use the same classification as fresh outcomes: exact match for good, bad
// and n/a, prefix match for error (the trailing message varies). Anything
// else is left uncounted.
func (c *Counters) Observe(status string) {
	switch {
	case status == "good":
		c.Good++
	case status == "bad":
		c.Bad++
	case status == "n/a":
		c.NA++
	case strings.HasPrefix(status, "error"):
		c.Error++
	}
}

// Summary renders the counters as the loaded/finished console line.
func (c *Counters) Summary(prefix string) string {
	return fmt.Sprintf("%s: %d good, %d bad, %d n/a, %d error",
		prefix, c.Good, c.Bad, c.NA, c.Error)
}
