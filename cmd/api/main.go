package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookshelf-service/cmd/api/book"
	"github.com/bookshelf-service/cmd/api/config"
	"github.com/bookshelf-service/cmd/api/docs"
	bookhttp "github.com/bookshelf-service/cmd/api/http"
	"github.com/bookshelf-service/cmd/api/inmemory"
	"github.com/bookshelf-service/cmd/api/notifications"
)

func main() {
	err := run()
	if err != nil {
		slog.Error("startup", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	//parse the embedded api documentation, a malformed template must abort startup:
	apiDocs, err := docs.New(cfg.PathPrefix)
	if err != nil {
		return fmt.Errorf("loading api documentation: %w", err)
	}

	//create the in-memory store:
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}

	ntfy := notifications.NewNtfy(cfg.NotificationsEnabled, cfg.NotificationsURL, &http.Client{})

	bookService := book.NewService(store, ntfy, cfg.NotificationsTimeout)
	bookHandler := bookhttp.NewBookHandler(bookService, cfg.RequestTimeout)
	docsHandler := bookhttp.NewDocsHandler(apiDocs, cfg.BaseURL, cfg.PathPrefix)

	//create and init http server:
	server := bookhttp.NewServer(bookhttp.ServerConfig{
		Host:        cfg.Host,
		Port:        cfg.Port,
		PathPrefix:  cfg.PathPrefix,
		CORSOrigins: cfg.CORSOrigins,
	}, logger, bookHandler, docsHandler)

	go func() {
		slog.Info("server starting", "addr", server.Addr, "prefix", cfg.PathPrefix)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("unexpected http server error", "error", err)
			os.Exit(1)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	ctx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	slog.Info("graceful shutdown complete")
	return nil
}
