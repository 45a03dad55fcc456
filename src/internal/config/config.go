// FILE: reqtap/src/internal/config/config.go
package config

// Config is the root configuration. It is built once at startup and
// read-only afterwards; every component receives it by pointer and may
// share it across workers without synchronization.
type Config struct {
	AccessLog AccessLogConfig `toml:"access_log"`
	Server    ServerConfig    `toml:"server"`
	Logging   LoggingConfig   `toml:"logging"`
}

// AccessLogConfig controls what gets logged and how it is encoded.
type AccessLogConfig struct {
	// Wire format: "logfmt" or "json"
	Format string `toml:"format"`

	// Only requests with status >= MinStatus are logged
	MinStatus int `toml:"min_status"`

	// Minimum severity: "info", "warn", "error"
	MinLevel string `toml:"min_level"`

	// Console target: "stdout", "stderr", "split", or "auto"
	// "split": info to stdout, warn/error to stderr
	// "auto": "split" when stderr is a terminal, "stderr" otherwise
	Target string `toml:"target"`

	// Emit truncation diagnostics on the internal logger
	Diagnostics bool `toml:"diagnostics"`

	Fields Fields `toml:"fields"`
}

// Fields is the allow-list of optional record fields. A disabled field is
// never extracted or emitted, regardless of what the request carries.
type Fields struct {
	Client    bool `toml:"client"`
	TraceID   bool `toml:"trace_id"`
	SpanID    bool `toml:"span_id"`
	Query     bool `toml:"query"`
	UserAgent bool `toml:"user_agent"`
	UserID    bool `toml:"user_id"`
	RequestID bool `toml:"request_id"`
}

// ServerConfig holds the demo server's listen settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoggingConfig configures the internal diagnostics logger, not the
// access-log stream itself.
type LoggingConfig struct {
	// Output mode: "stdout", "stderr", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`
}
