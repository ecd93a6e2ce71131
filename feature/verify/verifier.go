package verify

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"mirrorcheck/core/transport"
)

// Result is the product of one streaming comparison.
type Result struct {
	Outcome Outcome
	// Bytes is the total number of remote bytes received.
	Bytes int64
	// Elapsed is the wall-clock duration of the transfer.
	Elapsed time.Duration
}

// Verifier runs streaming comparisons through a shared transport client.
type Verifier struct {
	client    *transport.Client
	chunkSize int
}

// NewVerifier creates a verifier reading transfers in chunkSize slices.
func NewVerifier(client *transport.Client, chunkSize int) *Verifier {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Verifier{client: client, chunkSize: chunkSize}
}

// Verify streams url and compares it chunk by chunk against the file at
// path. Transport failures become Error outcomes; content divergence becomes
// Bad. The returned error is reserved for local faults that abort the whole
// run, such as failing to open a file that does exist.
func (v *Verifier) Verify(ctx context.Context, path, url string, creds *transport.Credentials) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cmp, err := NewChunkComparator(f, v.chunkSize)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	start := time.Now()
	resp, err := v.client.Do(ctx, transport.Request{URL: url, Credentials: creds})
	if err != nil {
		return Result{Outcome: Errorf("%s", transport.ErrorText(err))}, nil
	}
	defer resp.Body.Close()

	// A non-2xx response still carries a body (an error page, usually);
	// it is compared like any other content and ends up bad.
	var total int64
	buf := make([]byte, v.chunkSize)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			total += int64(n)
			cmp.Consume(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{
				Outcome: Errorf("%s", transport.ErrorText(err)),
				Bytes:   total,
				Elapsed: time.Since(start),
			}, nil
		}
	}
	elapsed := time.Since(start)

	outcome := Outcome{Kind: Bad}
	if cmp.Finish() {
		outcome = Outcome{Kind: Good}
	}
	return Result{Outcome: outcome, Bytes: total, Elapsed: elapsed}, nil
}

// FormatSpeed renders a transfer rate in KB/s, switching to MB/s once the
// rate reaches 1024 KB/s.
func FormatSpeed(bytes int64, elapsed time.Duration) string {
	secs := elapsed.Seconds()
	if secs <= 0 {
		secs = 1e-9
	}
	kbps := float64(bytes) / secs / 1024
	if kbps >= 1024 {
		return fmt.Sprintf("%.1f MB/s", kbps/1024)
	}
	return fmt.Sprintf("%.1f KB/s", kbps)
}
