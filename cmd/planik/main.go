package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkravets/planik/internal/database"
	"github.com/mkravets/planik/internal/logging"
	"github.com/mkravets/planik/internal/server"
	"github.com/mkravets/planik/internal/weather"
)

func main() {
	logger := logging.Setup(os.Getenv("PLANIK_LOG_LEVEL"))

	port := os.Getenv("PLANIK_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("PLANIK_DB_PATH")
	if dbPath == "" {
		dbPath = "planik.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	weatherSvc := weather.NewService(weather.Config{
		APIKey: os.Getenv("PLANIK_WEATHER_API_KEY"),
		City:   os.Getenv("PLANIK_WEATHER_CITY"),
	})

	srv := server.New(db, weatherSvc, logger)

	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Background cleanup goroutine
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				srv.RateLimiter().Cleanup(time.Minute)
			case <-cleanupCtx.Done():
				return
			}
		}
	}()

	go func() {
		slog.Info("planik starting", "addr", ":"+port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
