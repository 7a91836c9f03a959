package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/metalaloud/royalty-service/internal/app/background"
	"github.com/metalaloud/royalty-service/internal/app/setup"
	"github.com/metalaloud/royalty-service/internal/config"
	royaltyhttp "github.com/metalaloud/royalty-service/internal/delivery/http"
	"github.com/metalaloud/royalty-service/internal/delivery/http/handlers"
	"github.com/metalaloud/royalty-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()
	setupLogger(cfg)

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.SalePublisher.Close()
	defer deps.CopyrightPublisher.Close()

	if cfg.RoyaltyDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.DB, cfg.RoyaltyDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	useCases := setup.InitializeUseCases(deps)

	router := royaltyhttp.NewRouter(royaltyhttp.Handlers{
		Copyright:  handlers.NewCopyrightHandler(useCases.CopyrightUsecase),
		Wallet:     handlers.NewWalletHandler(useCases.WalletUsecase),
		Payment:    handlers.NewPaymentHandler(useCases.PaymentUsecase),
		Commission: handlers.NewCommissionHandler(useCases.CommissionUsecase),
		Catalog:    handlers.NewCatalogHandler(useCases.CatalogUsecase),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(cfg, useCases.CopyrightUsecase, useCases.WalletUsecase, useCases.PaymentUsecase)
	tasks.StartAll(ctx)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server started", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err.Error())
	}
	slog.Info("server stopped")
}

func setupLogger(cfg *config.RoyaltyConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
