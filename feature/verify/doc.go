// Package verify implements the verification engine: it streams remote
// content against local files, classifies each name into an outcome and
// records it in the ledger so an interrupted batch can be resumed.
//
// # Pipeline
//
// A run proceeds in two passes. The main pass walks the input files in
// order: each file's base name is resolved to a URL through a Source, the
// remote content is streamed chunk by chunk through a ChunkComparator, and
// the good/bad/error outcome is appended to the ledger before the next file
// starts. The probe pass then takes every table entry no local file claimed
// and checks whether the remote resource still exists; a live resource the
// batch expected to be absent is itself an anomaly ("error: available").
//
// # Outcomes
//
//   - good: remote and local content are byte-identical and equal length
//   - bad: any byte or length divergence (including a short local file)
//   - n/a: a probed, unclaimed resource is not available remotely
//   - error: <message>: a transport failure, or a name with no source
//
// Names already present in the ledger from any earlier run are skipped
// entirely, which is what makes re-running the same batch idempotent.
package verify
