package verify

import (
	"context"
	"strings"

	"mirrorcheck/core/transport"
)

// Prober checks whether sources no local file claimed still exist remotely.
type Prober struct {
	client *transport.Client
}

// NewProber creates a prober sharing the run's transport client.
func NewProber(client *transport.Client) *Prober {
	return &Prober{client: client}
}

// Probe issues a body-less, redirect-following request for url. A success
// status whose final URL still contains name means the resource is
// unexpectedly live ("error: available"). Anything else is n/a: a redirect
// to a generic landing page answers 2xx too, so the name check on the final
// URL is what separates real presence from a soft 404.
func (p *Prober) Probe(ctx context.Context, name, url string, creds *transport.Credentials) Outcome {
	resp, err := p.client.Do(ctx, transport.Request{URL: url, NoBody: true, Credentials: creds})
	if err != nil {
		return Errorf("%s", transport.ErrorText(err))
	}
	resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && strings.Contains(resp.EffectiveURL, name) {
		return Errorf("available")
	}
	return Outcome{Kind: NotAvailable}
}
