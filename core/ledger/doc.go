// Package ledger provides the durable, append-only record of per-name
// verification outcomes.
//
// The ledger is a line-oriented UTF-8 text file. Each line is
// "<name>: <status>", where status is one of the fixed tokens good, bad, n/a
// or "error: <message>". Lines are only ever appended, never edited, which is
// what makes an interrupted batch resumable: replaying the file yields every
// name that has already been decided.
//
// # Durability
//
// Append syncs the file before returning, so a decision survives a crash
// immediately after it is made. The file is opened in append mode and guarded
// by a cross-process advisory lock (a .lock sidecar), preventing two
// concurrent runs from interleaving writes into the same ledger.
//
// # Tolerance
//
// Replay strips trailing \r, splits each line at the first ": " and silently
// ignores lines without a separator, so a hand-edited or truncated ledger
// never aborts a run.
package ledger
