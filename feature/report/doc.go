// Package report exposes read-only views over the ledger for operators
// watching a long batch from elsewhere.
//
// The handlers never take the ledger writer lock, so the report server can
// run alongside an active verification; it simply re-reads the file per
// request.
//
// # HTTP Endpoints
//
//   - GET /summary : outcome counters folded from the ledger.
//   - GET /entries : every decided (name, status) pair; supports ?status=
//     with the values good, bad, n/a or error to filter.
package report
