// Copyright (c) 2026 Threadline Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Threadline — Catalog Enrichment Service
//
// Entry point for the enrichment service. It:
//  1. Loads configuration from config.yaml and the environment
//  2. Builds the three collaborator clients (Vision, Vertex AI,
//     commercetools) once at startup
//  3. Wires them into the enrichment pipeline
//  4. Serves the Pub/Sub push endpoint, health check, and metrics
//  5. Handles graceful shutdown on SIGTERM/SIGINT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/threadline/catalog-enrichment/internal/commercetools"
	"github.com/threadline/catalog-enrichment/internal/config"
	"github.com/threadline/catalog-enrichment/internal/describe"
	"github.com/threadline/catalog-enrichment/internal/pipeline"
	"github.com/threadline/catalog-enrichment/internal/server"
	"github.com/threadline/catalog-enrichment/internal/vision"
	"github.com/threadline/catalog-enrichment/internal/webhook"
)

func main() {
	// Structured JSON logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local development convenience; ignored when no .env exists
	_ = godotenv.Load()

	slog.Info("starting catalog enrichment service")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"google_project", cfg.Google.ProjectID,
		"model", cfg.Google.Model,
		"ct_project", cfg.Commercetools.ProjectKey,
		"flag_attribute", cfg.FlagAttribute,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Vision client ---
	analyzer, err := vision.NewClient(ctx)
	if err != nil {
		slog.Error("failed to create vision client", "error", err)
		os.Exit(1)
	}
	defer analyzer.Close()

	// --- Vertex AI generator ---
	generator, err := describe.NewGenerator(ctx, cfg.Google.ProjectID, cfg.Google.Location, cfg.Google.Model)
	if err != nil {
		slog.Error("failed to create vertex ai generator", "error", err)
		os.Exit(1)
	}
	defer generator.Close()

	// --- commercetools client ---
	ct := cfg.Commercetools
	persister := commercetools.NewClient(
		commercetools.NewHTTPClient(ctx, ct.AuthURL, ct.ClientID, ct.ClientSecret, ct.ProjectKey),
		ct.APIURL,
		ct.ProjectKey,
	)

	// --- Pipeline + handler ---
	p := pipeline.New(analyzer, generator, persister, cfg.FlagAttribute)
	handler := webhook.NewHandler(p)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	// --- Graceful Shutdown ---
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		sig := <-sigCh

		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("enrichment service listening", "addr", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("enrichment service stopped")
}
