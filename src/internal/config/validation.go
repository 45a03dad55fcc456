// FILE: reqtap/src/internal/config/validation.go
package config

import (
	"fmt"

	"reqtap/src/internal/core"
)

func (c *Config) validate() error {
	switch c.AccessLog.Format {
	case "logfmt", "json":
	default:
		return fmt.Errorf("invalid access_log.format: %q (valid: logfmt, json)", c.AccessLog.Format)
	}

	if _, err := core.ParseSeverity(c.AccessLog.MinLevel); err != nil {
		return fmt.Errorf("invalid access_log.min_level: %w", err)
	}

	if c.AccessLog.MinStatus < 0 || c.AccessLog.MinStatus > 599 {
		return fmt.Errorf("invalid access_log.min_status: %d (valid: 0-599)", c.AccessLog.MinStatus)
	}

	switch c.AccessLog.Target {
	case "stdout", "stderr", "split", "auto":
	default:
		return fmt.Errorf("invalid access_log.target: %q (valid: stdout, stderr, split, auto)", c.AccessLog.Target)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}

	switch c.Logging.Output {
	case "stdout", "stderr", "none":
	default:
		return fmt.Errorf("invalid logging.output: %q (valid: stdout, stderr, none)", c.Logging.Output)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}
