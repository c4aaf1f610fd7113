package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/cache"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/config"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/ledger"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/logging"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/server"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/tools"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/tracing"
	"github.com/google/subcommands"
)

type serveCmd struct {
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP tool server" }
func (*serveCmd) Usage() string {
	return `finsim serve [-port <n>]

  Serves every tool at POST /tools/{name}, plus /tools, /healthz and /metrics.
  Configuration comes from .env, CONFIG_FILE and the environment.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", 0, "Listen port; overrides PORT when set.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.port > 0 {
		cfg.Port = c.port
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	repo, closeCache := newCache(ctx, cfg, logger)
	defer closeCache()

	store := ledger.NewMemoryStore()
	prices := ledger.NewPriceBook()
	registry := tools.Registry(tools.Deps{
		Config: cfg,
		Tracer: tracer,
		Ledger: ledger.New(store,
			ledger.WithPrices(prices),
			ledger.WithMergeBySymbol(cfg.MergePositions),
			ledger.WithLogger(logger),
		),
		Wallets: ledger.NewWallets(store, nil),
		Prices:  prices,
		Cache:   repo,
		Logger:  logger,
	})

	rateLimiter := server.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.NewHandler(registry, logger).Routes(rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "tools", len(registry))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		logger.Info("shutting down server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache возвращает Redis при заданном REDIS_ADDR и доступном сервере, иначе кэш в памяти
func newCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Repository, func()) {
	if cfg.RedisAddr == "" {
		return cache.NewMemory(), func() {}
	}

	r := cache.NewRedis(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		_ = r.Close()
		return cache.NewMemory(), func() {}
	}

	logger.Info("redis cache enabled", "addr", cfg.RedisAddr)
	return r, func() { _ = r.Close() }
}
