package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// Validate checks that the configuration can start the storefront.
func Validate(cfg Config) error {
	switch cfg.App.Mode {
	case ModeHTTP, ModeTUI:
	default:
		return fmt.Errorf("app.mode must be %q or %q, got %q", ModeHTTP, ModeTUI, cfg.App.Mode)
	}

	if cfg.App.Mode == ModeHTTP && (cfg.App.Port <= 0 || cfg.App.Port > 65535) {
		return fmt.Errorf("app.port must be between 1 and 65535, got %d", cfg.App.Port)
	}
	if cfg.App.ShutdownTimeout < 0 {
		return errors.New("app.shutdown_timeout must not be negative")
	}

	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", cfg.Log.Level, err)
	}

	if cfg.Currency.Symbol == "" {
		return errors.New("currency.symbol must be set")
	}
	if _, err := language.Parse(cfg.Currency.Locale); err != nil {
		return fmt.Errorf("invalid currency.locale %q: %w", cfg.Currency.Locale, err)
	}
	return nil
}
