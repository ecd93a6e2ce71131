package verify

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mirrorcheck/core/ledger"
	"mirrorcheck/core/transport"

	"go.uber.org/zap"
)

// Service wires the source, ledger, verifier and prober into a full
// verification run.
type Service struct {
	source   Source
	ledger   *ledger.Ledger
	verifier *Verifier
	prober   *Prober
	creds    *transport.Credentials
	logger   *zap.Logger
	out      io.Writer
}

// NewService creates a run service. out receives the per-item console lines
// (normally os.Stdout); diagnostic logging goes through logger.
func NewService(source Source, led *ledger.Ledger, verifier *Verifier, prober *Prober, creds *transport.Credentials, logger *zap.Logger, out io.Writer) *Service {
	return &Service{
		source:   source,
		ledger:   led,
		verifier: verifier,
		prober:   prober,
		creds:    creds,
		logger:   logger,
		out:      out,
	}
}

// Run executes the main pass over files in order, then the probe pass over
// whatever the source table still holds. It processes one item at a time and
// appends each decision to the ledger before moving on, so interrupting the
// process between items loses nothing.
func (s *Service) Run(ctx context.Context, files []string) (*Counters, error) {
	counters := &Counters{}
	seen, err := s.replay(counters)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(s.out, counters.Summary("loaded"))
	s.logger.Debug("ledger replayed", zap.Int("decided", len(seen)))

	for _, path := range files {
		if err := s.verifyFile(ctx, path, seen, counters); err != nil {
			return counters, err
		}
	}

	if err := s.probeRemaining(ctx, counters); err != nil {
		return counters, err
	}

	fmt.Fprintln(s.out, counters.Summary("finished"))
	return counters, nil
}

// replay seeds the skip set and counters from the ledger and discards every
// already-decided name from the source so it cannot resurface in the probe
// pass. Names with unrecognized statuses still land in the skip set.
func (s *Service) replay(counters *Counters) (map[string]struct{}, error) {
	seen := make(map[string]struct{})
	err := s.ledger.Replay(func(e ledger.Entry) {
		seen[e.Name] = struct{}{}
		s.source.Discard(e.Name)
		counters.Observe(e.Status)
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

func (s *Service) verifyFile(ctx context.Context, path string, seen map[string]struct{}, counters *Counters) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		// Console only: not ledgered, not counted, just skipped.
		fmt.Fprintf(s.out, "%s: error: not a file\n", path)
		return nil
	}

	name := filepath.Base(path)
	if _, ok := seen[name]; ok {
		s.logger.Debug("already decided, skipping", zap.String("name", name))
		return nil
	}

	url, ok := s.source.Resolve(name)
	if !ok {
		outcome := Errorf("missing source")
		fmt.Fprintf(s.out, "%s: %s\n", name, outcome.Status())
		return s.commit(name, outcome.Status(), counters)
	}

	res, err := s.verifier.Verify(ctx, path, url, s.creds)
	if err != nil {
		return err
	}

	line := name + ": " + res.Outcome.Status()
	if res.Outcome.Kind == Good || res.Outcome.Kind == Bad {
		line += " (" + FormatSpeed(res.Bytes, res.Elapsed) + ")"
	}
	fmt.Fprintln(s.out, line)

	return s.commit(name, res.Outcome.Status(), counters)
}

// probeRemaining checks every table entry no local file claimed. Finding one
// alive is an anomaly worth flagging, not a success.
func (s *Service) probeRemaining(ctx context.Context, counters *Counters) error {
	remaining := s.source.Remaining()
	if len(remaining) > 0 {
		s.logger.Debug("probing unclaimed sources", zap.Int("count", len(remaining)))
	}
	for name, url := range remaining {
		outcome := s.prober.Probe(ctx, name, url, s.creds)
		fmt.Fprintf(s.out, "%s: %s\n", name, outcome.Status())
		if err := s.commit(name, outcome.Status(), counters); err != nil {
			return err
		}
	}
	return nil
}

// commit folds the decision into the counters and makes it durable. A ledger
// write failure aborts the run; continuing would silently forfeit resume.
func (s *Service) commit(name, status string, counters *Counters) error {
	counters.Observe(status)
	return s.ledger.Append(name, status)
}
