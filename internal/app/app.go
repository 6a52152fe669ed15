package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ledger-tags/internal/adapter/postgres"
	"github.com/heartmarshall/ledger-tags/internal/adapter/postgres/link"
	tagrepo "github.com/heartmarshall/ledger-tags/internal/adapter/postgres/tag"
	"github.com/heartmarshall/ledger-tags/internal/adapter/postgres/transaction"
	"github.com/heartmarshall/ledger-tags/internal/config"
	"github.com/heartmarshall/ledger-tags/internal/metrics"
	"github.com/heartmarshall/ledger-tags/internal/service/association"
	"github.com/heartmarshall/ledger-tags/internal/service/ledger"
	"github.com/heartmarshall/ledger-tags/internal/service/tag"
	"github.com/heartmarshall/ledger-tags/internal/transport/rest"
)

// Run loads configuration, connects to PostgreSQL, and serves HTTP until ctx
// is cancelled. The server is then drained within server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Metrics.Enabled() {
		if err := prometheus.Register(metrics.NewPoolCollector(pool)); err != nil {
			return fmt.Errorf("register pool metrics: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(*cfg, pool, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}

// NewHandler assembles repositories, services and the REST router on top of pool.
func NewHandler(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) http.Handler {
	txm := postgres.NewTxManager(pool)

	tags := tagrepo.New(pool)
	links := link.New(pool)
	transactions := transaction.New(pool)

	tagSvc := tag.NewService(logger, tags, txm, cfg.Database.QueryTimeout)
	assocSvc := association.NewService(logger, transactions, tags, links, txm)
	ledgerSvc := ledger.NewService(logger, transactions, tagSvc, assocSvc, txm, cfg.Database.QueryTimeout)

	return rest.NewRouter(cfg, rest.Handlers{
		Tags:         rest.NewTagHandler(tagSvc, cfg.Server.MaxBodyBytes, logger),
		Transactions: rest.NewTransactionHandler(ledgerSvc, cfg.Server.MaxBodyBytes, logger),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
	}, logger)
}
