package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"goflare.io/storefront"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/config"
	"goflare.io/storefront/contact"
	"goflare.io/storefront/driver"
	"goflare.io/storefront/event"
	"goflare.io/storefront/kv"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/web"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	var storage kv.Store = kv.NewMemory()
	if cfg.RedisAddr != "" {
		client, err := driver.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = client.Close() }()
		storage = kv.NewRedis(client, "storefront")
		logger.Info("Using redis for persisted state", zap.String("addr", cfg.RedisAddr))
	}

	var catalogRepo catalog.Repository = catalog.NewStatic(catalog.SampleProducts())
	var events event.Repository
	var tm *driver.TransactionManager
	if cfg.PostgresDSN != "" {
		if err := driver.RunMigrations(cfg.PostgresDSN, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		db, err := driver.ConnectSQL(cfg.PostgresDSN)
		if err != nil {
			logger.Fatal("Failed to connect to postgres", zap.Error(err))
		}
		defer db.Pool.Close()
		catalogRepo = catalog.NewPostgres(db.Pool, nil, logger)
		events = event.NewRepository(db.Pool, logger)
		tm = driver.NewTransactionManager(db.Pool, logger)
		logger.Info("Using postgres catalog and event log")
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			logger.Fatal("Failed to connect to nats", zap.Error(err))
		}
		defer natsConn.Close()
		logger.Info("Publishing cart events to nats", zap.String("url", cfg.NATSURL))
	}

	submitter := contact.NewSubmitter(
		enum.ContactSubmitMode(cfg.ContactMode), cfg.ContactEndpoint, nil, logger)

	svc := storefront.NewService(
		storefront.Config{
			Currency:       stripe.Currency(cfg.Currency),
			WhatsAppNumber: cfg.WhatsAppNumber,
			StoreEmail:     cfg.StoreEmail,
		},
		catalogRepo, storage, events, tm,
		submitter,
		natsConn,
		logger,
	)

	srv := web.New(web.Config{Address: cfg.Address}, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Storefront listening", zap.String("addr", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		logger.Fatal("Server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
