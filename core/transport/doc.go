// Package transport provides the shared HTTP client used for verification
// transfers and probes.
//
// The client is created once per run and reused for every request. It keeps a
// run-scoped cookie jar (cookies set by one response are replayed on later
// requests), follows redirects across hosts, and re-applies basic-auth
// credentials on every hop of a redirect chain, mirroring how the upstream
// mirrors expect authenticated session traffic to behave.
//
// # Request Descriptor
//
// Each call passes an explicit Request value describing the single transfer:
// the target URL, whether a body is wanted (NoBody issues a HEAD), and
// optional credentials. No request state leaks between calls.
//
// # Usage
//
//	client, _ := transport.NewClient(cfg)
//	resp, err := client.Do(ctx, transport.Request{URL: url})
package transport
