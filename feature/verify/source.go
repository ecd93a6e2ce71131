package verify

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TemplateMarker is the substring of a template source that gets replaced by
// the resolved name.
const TemplateMarker = "{}"

// Source supplies the remote URL for a name.
type Source interface {
	// Resolve returns the URL for name. Table sources consume the entry:
	// a name resolves at most once per run.
	Resolve(name string) (string, bool)
	// Discard drops name without resolving it. Used during ledger replay
	// so already-decided names never reach the probe pass.
	Discard(name string)
	// Remaining returns the table entries that were never resolved or
	// discarded. Always empty for inexhaustible sources.
	Remaining() map[string]string
}

// TableSource is a finite, consumable name-to-URL table.
type TableSource struct {
	entries map[string]string
}

// NewTableSource reads one URL per line and keys each by its derived name.
// A later line with the same name overwrites an earlier one.
func NewTableSource(r io.Reader) (*TableSource, error) {
	entries := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		url := strings.TrimSuffix(scanner.Text(), "\r")
		if url == "" {
			continue
		}
		entries[NameOf(url)] = url
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source list: %w", err)
	}
	return &TableSource{entries: entries}, nil
}

func (s *TableSource) Resolve(name string) (string, bool) {
	url, ok := s.entries[name]
	if ok {
		delete(s.entries, name)
	}
	return url, ok
}

func (s *TableSource) Discard(name string) {
	delete(s.entries, name)
}

func (s *TableSource) Remaining() map[string]string {
	return s.entries
}

// TemplateSource derives URLs by substituting the name into a pattern. It
// never exhausts and leaves nothing to probe.
type TemplateSource struct {
	Pattern string
}

func (s TemplateSource) Resolve(name string) (string, bool) {
	return strings.ReplaceAll(s.Pattern, TemplateMarker, name), true
}

func (s TemplateSource) Discard(string) {}

func (s TemplateSource) Remaining() map[string]string {
	return nil
}
