package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all library settings, populated from environment variables.
type Config struct {
	DataDir    string
	PlotOutDir string
	PlotWidth  float64 // inches
	PlotHeight float64 // inches
	LogLevel   string
	LogFormat  string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	plotWidth, err := parseInches("PLOT_WIDTH", 8)
	if err != nil {
		return nil, err
	}
	plotHeight, err := parseInches("PLOT_HEIGHT", 6)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:    envOrDefault("FARS_DATA_DIR", "."),
		PlotOutDir: envOrDefault("PLOT_OUT_DIR", "."),
		PlotWidth:  plotWidth,
		PlotHeight: plotHeight,
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		LogFormat:  envOrDefault("LOG_FORMAT", "json"),
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInches(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return v, nil
}
