package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KikePrograma-afk/Tukiosko/internal/config"
	"github.com/KikePrograma-afk/Tukiosko/internal/gateway"
	"github.com/KikePrograma-afk/Tukiosko/internal/router"
	"github.com/KikePrograma-afk/Tukiosko/internal/scheduler"
	"github.com/KikePrograma-afk/Tukiosko/internal/storage"
	"github.com/KikePrograma-afk/Tukiosko/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Pretty console logs in development, JSON in production.
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	local, err := storage.OpenLocal(cfg.LocalStorePath, cfg.MaxBackups)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open local fallback store")
	}
	defer local.Close()

	gw := gateway.New(cfg.BackendURL, local, cfg.BackendTimeout)

	// Initial load blocks startup: both resources fetch concurrently and
	// degrade to the local fallback on their own, so this cannot fail.
	st := store.New(gw)
	st.Initialize(context.Background())

	autoSaver := scheduler.NewAutoSaver(st, gw)
	if err := autoSaver.Start(cfg.AutoSaveInterval); err != nil {
		log.Fatal().Err(err).Msg("failed to start auto-save")
	}

	r := router.New(cfg, st)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Tukiosko backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	// Stop the interval task, then push whatever changed since the last
	// tick so nothing is lost between the final mutation and shutdown.
	autoSaver.Stop()
	autoSaver.Flush(shutdownCtx)

	log.Info().Msg("server exited")
}
