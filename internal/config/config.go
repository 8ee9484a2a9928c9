// Package config reads the server configuration from the environment. A
// .env file in the working directory is loaded by the binary before Load is
// called.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tinexu/portfolio/internal/interaction"
)

type Config struct {
	Port        string
	ContentPath string
	Watch       bool
	AssetsDir   string
	Debug       bool
	// HashSalt salts client address hashes in request logs. A random salt
	// is generated when empty.
	HashSalt    string
	Interaction interaction.Config
}

// Load builds a Config from the environment, falling back to defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:        "8080",
		AssetsDir:   "./assets",
		Interaction: interaction.DefaultConfig(),
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	cfg.ContentPath = os.Getenv("PORTFOLIO_CONTENT")
	if v := os.Getenv("PORTFOLIO_ASSETS_DIR"); v != "" {
		cfg.AssetsDir = v
	}
	cfg.HashSalt = os.Getenv("PORTFOLIO_HASH_SALT")

	var errs []error
	boolEnv(&errs, "PORTFOLIO_WATCH", &cfg.Watch)
	boolEnv(&errs, "PORTFOLIO_DEBUG", &cfg.Debug)
	boolEnv(&errs, "PORTFOLIO_RESTORE_HOVER", &cfg.Interaction.RestoreHoverOnRelease)
	floatEnv(&errs, "PORTFOLIO_SECTION_LOOKAHEAD", &cfg.Interaction.SectionLookaheadPx)
	floatEnv(&errs, "PORTFOLIO_NAV_THRESHOLD", &cfg.Interaction.NavElevationThresholdPx)
	floatEnv(&errs, "PORTFOLIO_MAGNETIC_DAMPING", &cfg.Interaction.MagneticDamping)
	floatEnv(&errs, "PORTFOLIO_TILT_SENSITIVITY", &cfg.Interaction.TiltSensitivity)
	floatEnv(&errs, "PORTFOLIO_PARALLAX_SPEED", &cfg.Interaction.ParallaxDefaultSpeed)
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	if cfg.Watch && cfg.ContentPath == "" {
		return Config{}, errors.New("PORTFOLIO_WATCH requires PORTFOLIO_CONTENT")
	}
	if err := cfg.Interaction.Validate(); err != nil {
		return Config{}, fmt.Errorf("interaction config: %w", err)
	}
	return cfg, nil
}

func boolEnv(errs *[]error, key string, dst *bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}

func floatEnv(errs *[]error, key string, dst *float64) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = f
}
