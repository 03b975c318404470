package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	FRED struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"fred"`
	CDS struct {
		PageURL string `yaml:"page_url"`
	} `yaml:"cds"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	History struct {
		File string `yaml:"file"`
	} `yaml:"history"`
	Chart struct {
		File string `yaml:"file"`
	} `yaml:"chart"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	RunMode string `yaml:"run_mode"` // "once" (default) or "daemon"
	Proxy   string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		cfg.FRED.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("RUN_MODE"); v != "" {
		cfg.RunMode = v
	}

	// Defaults
	if cfg.FRED.BaseURL == "" {
		cfg.FRED.BaseURL = "https://api.stlouisfed.org/fred/series/observations"
	}
	if cfg.CDS.PageURL == "" {
		cfg.CDS.PageURL = "https://www.macromicro.me/charts/33506/us-cds"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 21 * * *"
	}
	if cfg.History.File == "" {
		cfg.History.File = "data/liquidity_history.json"
	}
	if cfg.Chart.File == "" {
		cfg.Chart.File = "liquidity_dashboard.png"
	}
	if cfg.RunMode == "" {
		cfg.RunMode = "once"
	}

	return cfg, nil
}

// Validate checks that all required credentials are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.FRED.APIKey == "" {
		return fmt.Errorf("fred.api_key is required")
	}
	if c.RunMode != "once" && c.RunMode != "daemon" {
		return fmt.Errorf("run_mode must be %q or %q", "once", "daemon")
	}
	return nil
}
