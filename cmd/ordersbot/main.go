package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ordersbot/internal/config"
	"ordersbot/internal/database"
	"ordersbot/internal/handler"
	"ordersbot/internal/service"
	"ordersbot/internal/sheets"
	"ordersbot/internal/telegram"
	"ordersbot/internal/worker"
)

func main() {
	cfg := config.New()

	if cfg.TelegramToken == "" || cfg.SpreadsheetID == "" {
		slog.Error("telegram token and spreadsheet id are required")
		os.Exit(1)
	}

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(context.Background(), db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetClient, err := sheets.NewClient(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SheetRange)
	if err != nil {
		slog.Error("failed to create sheets client", "error", err)
		os.Exit(1)
	}

	// Services
	orderSvc := service.NewOrderService(sheetClient)
	subscriptionSvc := service.NewSubscriptionService(db)
	notifier := service.NewNotifier()

	// Bot
	bot, err := telegram.NewBot(cfg.TelegramToken, orderSvc, subscriptionSvc)
	if err != nil {
		slog.Error("failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	// Worker
	notifyWorker := worker.NewNotifyWorker(orderSvc, notifier, subscriptionSvc, bot, cfg.ChatID, cfg.NotifyInterval)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", handler.HealthHandler())
	r.Get("/api/orders", handler.OrdersHandler(orderSvc))
	r.Get("/api/suppliers", handler.SuppliersHandler(orderSvc))
	r.Post("/api/notify", handler.NotifyHandler(notifyWorker))

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go notifyWorker.Start(ctx)
	go bot.Run(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting ops server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("ops server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop worker and bot
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("ops server shutdown failed", "error", err)
	}

	slog.Info("stopped")
}
