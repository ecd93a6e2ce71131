// Package server holds the report server configuration.
//
// The verification engine itself is a CLI batch; the report server is an
// optional read-only HTTP surface over the ledger (see feature/report),
// started with the serve command. This package only defines its settings.
//
// # Configuration
//
// The Config struct defines the HTTP port and an optional API key. When the
// key is set, every request must present it in the X-Api-Key header.
package server
