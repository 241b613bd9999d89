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

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/poetracikal/backend/internal/config"
	"github.com/poetracikal/backend/internal/events"
	"github.com/poetracikal/backend/internal/httpserver"
	"github.com/poetracikal/backend/internal/logging"
	loggingmw "github.com/poetracikal/backend/internal/middleware/logging"
	"github.com/poetracikal/backend/internal/repo"
	"github.com/poetracikal/backend/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "poetracikal-api")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repo.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		cancel()
		log.Fatalf("db open: %v", err)
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatalf("ensure indexes: %v", err)
	}
	cancel()

	producer := events.NewProducer(cfg.KafkaBrokers)

	sessions := &service.SessionService{Store: store}
	authSvc := &service.AuthService{Store: store, Sessions: sessions}
	catalogSvc := &service.CatalogService{Store: store}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		Auth:     &httpserver.AuthHTTP{Svc: authSvc, Producer: producer},
		Catalog:  &httpserver.CatalogHTTP{Svc: catalogSvc, Producer: producer},
		System: &httpserver.SystemHTTP{
			Mongo:           store,
			DatabaseURLSet:  cfg.DatabaseURL != "",
			DatabaseNameSet: cfg.DatabaseName != "",
		},
		Sessions: sessions,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = producer.Close()
	_ = store.Close(shutdownCtx)

	log.Println("server stopped")
}
