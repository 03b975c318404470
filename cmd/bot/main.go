package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"LiquiditySentinel/internal/collector"
	"LiquiditySentinel/internal/config"
	"LiquiditySentinel/internal/history"
	"LiquiditySentinel/internal/notifier"
	"LiquiditySentinel/internal/recorder"
	"LiquiditySentinel/internal/scheduler"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"})
	log.Info().Msg("LiquiditySentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Data sources
	fetcher := collector.NewFREDFetcher(cfg.FRED.BaseURL, cfg.FRED.APIKey, cfg.Proxy)
	cds := collector.NewCDSScraper(cfg.CDS.PageURL, cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Msg("series fetcher ready")

	// History store
	if dir := filepath.Dir(cfg.History.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal().Err(err).Msg("create history directory")
		}
	}
	hist := history.NewStore(cfg.History.File)

	// Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	sched := scheduler.NewScheduler(fetcher, cds, hist, tn, rec, cfg.Chart.File)

	// Default: one full cycle, then exit. Failures are logged, not fatal.
	if cfg.RunMode == "once" {
		if err := sched.RunDashboard(); err != nil {
			log.Error().Err(err).Msg("dashboard run failed")
			return
		}
		log.Info().Msg("dashboard run ok")
		return
	}

	// Daemon mode: cron-driven runs plus command polling.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sched.RegisterDaily(cfg.Schedule.DailyCron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info().Str("cron", cfg.Schedule.DailyCron).Msg("daemon mode running")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing dashboard now")
		go func() {
			if err := sched.RunDashboard(); err != nil {
				log.Error().Err(err).Msg("startup dashboard run")
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()
	log.Info().Msg("LiquiditySentinel stopped")
}
