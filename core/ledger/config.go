package ledger

// Config holds configuration for the outcome ledger.
type Config struct {
	// Path is the ledger file location. The --ledger flag overrides it.
	Path string `mapstructure:"path" default:"mirrorcheck.txt"`
}
