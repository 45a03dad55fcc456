// FILE: reqtap/src/internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lconfig "github.com/lixenwraith/config"
)

func defaults() *Config {
	return &Config{
		AccessLog: AccessLogConfig{
			Format:      "logfmt",
			MinStatus:   0,
			MinLevel:    "info",
			Target:      "auto",
			Diagnostics: true,
			Fields: Fields{
				Client:    true,
				TraceID:   true,
				SpanID:    true,
				Query:     true,
				UserAgent: true,
				UserID:    false,
				RequestID: true,
			},
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Logging: LoggingConfig{
			Output: "stderr",
			Level:  "info",
		},
	}
}

// Load builds the configuration from defaults, the TOML config file and
// REQTAP_* environment variables, in ascending precedence.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = GetConfigPath()
	}

	cfg, err := lconfig.NewBuilder().
		WithDefaults(defaults()).
		WithEnvPrefix("REQTAP_").
		WithFile(configPath).
		WithEnvTransform(envTransform).
		WithSources(
			lconfig.SourceEnv,
			lconfig.SourceFile,
			lconfig.SourceDefault,
		).
		Build()

	if err != nil {
		if !strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	finalConfig := &Config{}
	if err := cfg.Scan(finalConfig); err != nil {
		return nil, fmt.Errorf("failed to scan config: %w", err)
	}

	return finalConfig, finalConfig.validate()
}

func envTransform(path string) string {
	env := strings.ReplaceAll(path, ".", "_")
	env = strings.ToUpper(env)
	return "REQTAP_" + env
}

// GetConfigPath resolves the config file location from the environment,
// falling back to reqtap.toml in the working directory.
func GetConfigPath() string {
	if configFile := os.Getenv("REQTAP_CONFIG_FILE"); configFile != "" {
		if filepath.IsAbs(configFile) {
			return configFile
		}
		if configDir := os.Getenv("REQTAP_CONFIG_DIR"); configDir != "" {
			return filepath.Join(configDir, configFile)
		}
		return configFile
	}
	return "reqtap.toml"
}
