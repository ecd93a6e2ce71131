package ledger

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// separator divides a name from its status on a ledger line.
const separator = ": "

// Entry is one decided (name, status) pair replayed from the ledger.
type Entry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Ledger is an exclusively-owned, append-only outcome record.
type Ledger struct {
	f    *os.File
	lock *flock.Flock
}

// Open opens or creates the ledger at path for reading and appending and
// takes an exclusive cross-process lock. It fails if another process already
// holds the lock.
func Open(path string) (*Ledger, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock ledger %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("ledger %s is in use by another process", path)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open ledger %s: %w", path, err)
	}

	return &Ledger{f: f, lock: lock}, nil
}

// Replay reads the ledger from the start and calls fn for every well-formed
// entry in file order. Lines without the separator are skipped.
func (l *Ledger) Replay(fn func(Entry)) error {
	if _, err := l.f.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind ledger: %w", err)
	}

	scanner := bufio.NewScanner(l.f)
	for scanner.Scan() {
		if e, ok := parseLine(scanner.Text()); ok {
			fn(e)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read ledger: %w", err)
	}
	return nil
}

// Append durably records one decision. The line is written and synced to
// disk before Append returns, so a crash immediately afterwards cannot lose
// it. The file is in append mode, so the rewind done by Replay never causes
// an overwrite.
func (l *Ledger) Append(name, status string) error {
	if _, err := fmt.Fprintf(l.f, "%s%s%s\n", name, separator, status); err != nil {
		return fmt.Errorf("failed to append to ledger: %w", err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("failed to sync ledger: %w", err)
	}
	return nil
}

// Close releases the file and the cross-process lock.
func (l *Ledger) Close() error {
	err := l.f.Close()
	if uerr := l.lock.Unlock(); err == nil {
		err = uerr
	}
	return err
}

// Load reads all well-formed entries from the ledger at path without taking
// the writer lock. It is the read-only view used by the status command and
// the report server, which may run alongside an active verification.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if e, ok := parseLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger %s: %w", path, err)
	}
	return entries, nil
}

// parseLine splits a ledger line at the first separator. The trailing \r of
// CRLF-terminated files is stripped first. Malformed lines report ok=false.
func parseLine(line string) (Entry, bool) {
	line = strings.TrimSuffix(line, "\r")
	name, status, found := strings.Cut(line, separator)
	if !found {
		return Entry{}, false
	}
	return Entry{Name: name, Status: status}, true
}
