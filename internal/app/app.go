// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the notes server from a [config.StructuredConfig]:
// storages, services, HTTP handlers, background workers and the server that
// runs them.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/metrics"
	"github.com/MKhiriev/go-notes/internal/server"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/workers"
)

// metricsSubsystem prefixes every application metric: go_notes_http_*.
const metricsSubsystem = "http"

type App struct {
	storages *store.Storages
	server   server.Server
	logger   *logger.Logger
}

// New opens and migrates the database and wires every component. The
// returned App owns the storages; call [App.Run] or [App.Close].
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("creating storages: %w", err)
	}

	a, err := newApp(storages, cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return a, nil
}

func newApp(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	m := metrics.NewMetrics(metricsSubsystem)

	services, err := service.NewServices(storages, *cfg, m, log)
	if err != nil {
		return nil, fmt.Errorf("creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, m, storages.DB, log)
	if err != nil {
		return nil, fmt.Errorf("creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, backgroundWorkers(storages, m, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	return &App{storages: storages, server: srv, logger: log}, nil
}

// backgroundWorkers always exports pool statistics. The session janitor is
// only needed when revoked sessions live in memory.
func backgroundWorkers(storages *store.Storages, m *metrics.Metrics, cfg config.Workers, log *logger.Logger) *workers.Workers {
	list := []workers.Worker{
		workers.NewDBStatsExporter(storages.DB, m, cfg.DBStatsInterval, log),
	}
	if pruner, ok := storages.ExpiredSessionsPruner(); ok {
		list = append(list, workers.NewSessionJanitor(pruner, cfg.SessionCleanupInterval, log))
	}
	return workers.NewWorkers(list...)
}

// Run serves until a stop signal and releases the storages afterwards.
func (a *App) Run() error {
	defer a.Close()
	return a.server.RunServer()
}

func (a *App) Close() {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing storages")
	}
}

// Migrate applies pending schema migrations without starting the server.
func Migrate(ctx context.Context, cfg config.Storage, log *logger.Logger) error {
	db, err := store.Connect(ctx, cfg.DB, log)
	if err != nil {
		return fmt.Errorf("connecting database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	log.Info().Str("dialect", string(db.Dialect())).Msg("database is up to date")
	return nil
}
