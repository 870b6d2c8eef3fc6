// Package config loads runtime settings from defaults, an optional TOML file, and
// ESSENTIALS_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigEnv overrides the config file location.
	ConfigEnv = "ESSENTIALS_CONFIG"
	// EnvPrefix is prepended to every environment override (ui.width -> ESSENTIALS_UI_WIDTH).
	EnvPrefix = "ESSENTIALS"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Log   LogConfig
	Trace TraceConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen      bool   `mapstructure:"alt_screen"`
	AccentColor    string `mapstructure:"accent_color"`
	HighlightColor string `mapstructure:"highlight_color"`
	Width          int    // render width used before the terminal reports its size
}

// LogConfig controls where log output goes. The TUI owns stdout, so logs only
// go to a file; an empty File discards them.
type LogConfig struct {
	File string
}

// TraceConfig holds OTLP exporter settings. Tracing is off when Endpoint is empty.
type TraceConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool
}

// Load reads configuration. path wins over ESSENTIALS_CONFIG, which wins over
// ~/.config/essentials/config.toml. A missing default file is not an error; a
// missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.accent_color", "86")
	v.SetDefault("ui.highlight_color", "205")
	v.SetDefault("ui.width", 80)
	v.SetDefault("log.file", "")
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service_name", "essentials")
	v.SetDefault("trace.insecure", true)

	v.SetConfigType("toml")

	explicit := path
	if explicit == "" {
		explicit = os.Getenv(ConfigEnv)
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "essentials"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Standard OTel variables are honored as well, after the prefixed ones.
	_ = v.BindEnv("trace.endpoint", EnvPrefix+"_TRACE_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("trace.service_name", EnvPrefix+"_TRACE_SERVICE_NAME", "OTEL_SERVICE_NAME")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Width <= 0 {
		return Config{}, fmt.Errorf("ui.width must be positive, got %d", c.UI.Width)
	}
	return c, nil
}
