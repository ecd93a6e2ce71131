// Package config provides configuration management for mirrorcheck.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file loaded via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: report server settings (port, API key)
//   - Storage: S3/MinIO credentials for s3:// sources
//   - Transport: HTTP timeouts, chunk size, default credentials
//   - Ledger: ledger file location
//   - Log: logging level and format
//
// Defaults come from `default:` struct tags on the partial config structs;
// environment variables override them with dots replaced by underscores
// (e.g. SERVER_PORT -> server.port).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Ledger.Path)
package config
