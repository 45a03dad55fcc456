// FILE: reqtap/src/cmd/reqtap/bootstrap.go
package main

import (
	"fmt"
	"os"
	"time"

	"reqtap/src/internal/config"

	"github.com/lixenwraith/log"
	"golang.org/x/term"
)

var logger *log.Logger

// initializeLogger sets up the internal diagnostics logger based on
// configuration. The access-log stream has its own sink and is not
// affected by these settings.
func initializeLogger(cfg *config.Config) error {
	logger = log.NewLogger()

	var configArgs []string

	levelValue, err := parseLogLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	configArgs = append(configArgs, fmt.Sprintf("level=%d", levelValue))

	switch cfg.Logging.Output {
	case "none":
		configArgs = append(configArgs, "disable_file=true", "enable_console=false")
	case "stdout":
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=true",
			"console_target=stdout")
	default:
		configArgs = append(configArgs,
			"disable_file=true",
			"enable_console=true",
			"console_target=stderr")
	}

	return logger.ApplyConfigString(configArgs...)
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
		}
	}
}

func parseLogLevel(level string) (int, error) {
	switch level {
	case "debug":
		return int(log.LevelDebug), nil
	case "info":
		return int(log.LevelInfo), nil
	case "warn", "warning":
		return int(log.LevelWarn), nil
	case "error":
		return int(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

// resolveTarget maps the "auto" console target to a concrete one: split
// routing when stderr is a terminal, plain stderr otherwise.
func resolveTarget(target string) string {
	if target != "auto" {
		return target
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return "split"
	}
	return "stderr"
}
