package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/config"
	"github.com/shpjp/quicker-api/handlers"
	"github.com/shpjp/quicker-api/logger"
	"github.com/shpjp/quicker-api/monitoring"
	"github.com/shpjp/quicker-api/repositories"
	"github.com/shpjp/quicker-api/routes"
	"github.com/shpjp/quicker-api/services"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("Error loading config")
	}

	logFile := logger.InitLogger(cfg.Log)
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the store and services
	store := repositories.NewStore()
	svc := services.New(store, services.WithLogger(logrus.StandardLogger()))
	prometheus.MustRegister(monitoring.NewStoreCollector(svc.Counts))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(svc)
	tweetHandler := handlers.NewTweetHandler(svc)
	systemHandler := handlers.NewSystemHandler()

	router := routes.SetupRoutes(userHandler, tweetHandler, systemHandler, cfg.Metrics)

	if *configPath != "" {
		go func() {
			err := config.Watch(ctx, *configPath, func(next *config.Config) {
				logger.SetLevel(next.Log.Level)
			})
			if err != nil {
				logrus.WithError(err).Warn("Config watcher stopped")
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logrus.WithField("addr", cfg.Server.Addr).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
}
