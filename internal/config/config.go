package config

import (
	"time"

	"example.com/storefront/internal/domain/money"
)

type Mode string

const (
	ModeHTTP Mode = "http"
	ModeTUI  Mode = "tui"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Log      LogConfig      `yaml:"log"`
	Currency CurrencyConfig `yaml:"currency"`
}

type AppConfig struct {
	Mode            Mode          `yaml:"mode"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"`
}

type CurrencyConfig struct {
	Locale string `yaml:"locale"`
	Symbol string `yaml:"symbol"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		App: AppConfig{
			Mode:            ModeHTTP,
			Port:            8080,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Currency: CurrencyConfig{
			Locale: money.DefaultLocale,
			Symbol: money.DefaultSymbol,
		},
	}
}
