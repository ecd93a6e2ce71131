package transport

// Config holds configuration for the HTTP transport.
type Config struct {
	// TimeoutSeconds is the connection setup and response header timeout in
	// seconds. It does not bound the body transfer, which may legitimately
	// take a long time for large files.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ChunkSize is the buffer size in bytes used when streaming response
	// bodies through the comparator.
	ChunkSize int `mapstructure:"chunk_size" default:"16384"`
	// Username is the default server username. The --user flag overrides it.
	Username string `mapstructure:"username" default:""`
	// Password is the default server password. The --pass flag overrides it.
	Password string `mapstructure:"password" default:""`
}
