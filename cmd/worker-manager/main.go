// cmd/worker-manager/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"exhibitor-profile/internal/common/camunda"
	"exhibitor-profile/internal/common/config"
	"exhibitor-profile/internal/common/database"
	"exhibitor-profile/internal/common/logger"
	"exhibitor-profile/internal/common/observability"
	"exhibitor-profile/internal/profile"
	"exhibitor-profile/pkg/catalog"

	pc "exhibitor-profile/internal/workers/profile/profile-create"
	pml "exhibitor-profile/internal/workers/profile/profile-manage-locales"
	pps "exhibitor-profile/internal/workers/profile/profile-plan-steps"
	ppd "exhibitor-profile/internal/workers/profile/profile-publish-directory"
	psc "exhibitor-profile/internal/workers/profile/profile-score"
	psp "exhibitor-profile/internal/workers/profile/profile-sync-products"
	ptn "exhibitor-profile/internal/workers/profile/profile-toggle-not-relevant"
	pus "exhibitor-profile/internal/workers/profile/profile-update-section"
)

// scoreCache is held as an interface so a disabled cache reaches the
// handlers as a nil interface rather than a typed nil pointer.
type scoreCache interface {
	Get(ctx context.Context, profileID string, version int64) (profile.CompletionResult, bool, error)
	Set(ctx context.Context, profileID string, version int64, result profile.CompletionResult) error
	Invalidate(ctx context.Context, profileID string) (int, error)
}

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	sections, err := catalog.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err), zap.String("path", cfg.Catalog.Path))
	}
	zapLog.Info("Section catalog loaded", zap.Int("sections", len(sections)))

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	store := database.NewProfileStore(pg.GetDB())
	if err := store.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("profile schema setup failed", zap.Error(err))
	}

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	directory := database.NewDirectoryIndex(esClient.Client, cfg.Directory.Index)
	if cfg.Directory.EnsureIndex {
		if err := directory.EnsureIndex(ctx); err != nil {
			zapLog.Fatal("directory index setup failed", zap.Error(err), zap.String("index", directory.Name()))
		}
	}

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	var cache scoreCache
	if cfg.Cache.Enabled {
		cache = database.NewScoreCache(redis.GetClient(), cfg.Cache.TTL())
	} else {
		zapLog.Info("Score cache disabled")
	}

	// --- Register Profile Workers ---
	client := zeebe.GetClient()
	var workers []*camunda.Worker
	register := func(taskType string, handler camunda.JobHandler) {
		if w := camunda.StartWorker(client, taskType, config.GetWorkerConfig(cfg, taskType), handler, log); w != nil {
			workers = append(workers, w)
		}
	}
	timeout := func(taskType string) time.Duration {
		return config.GetDuration(config.GetWorkerConfig(cfg, taskType).Timeout)
	}

	register(pc.TaskType, pc.NewHandler(
		&pc.Config{Timeout: timeout(pc.TaskType), Catalog: sections},
		store, obs, log,
	))
	register(pus.TaskType, pus.NewHandler(&pus.Config{Timeout: timeout(pus.TaskType)}, store, cache, obs, log))
	register(ptn.TaskType, ptn.NewHandler(&ptn.Config{Timeout: timeout(ptn.TaskType)}, store, cache, obs, log))
	register(psp.TaskType, psp.NewHandler(&psp.Config{Timeout: timeout(psp.TaskType)}, store, cache, obs, log))
	register(pml.TaskType, pml.NewHandler(&pml.Config{Timeout: timeout(pml.TaskType)}, store, cache, obs, log))
	register(psc.TaskType, psc.NewHandler(&psc.Config{Timeout: timeout(psc.TaskType)}, store, cache, obs, log))
	register(pps.TaskType, pps.NewHandler(&pps.Config{Timeout: timeout(pps.TaskType)}, store, obs, log))
	register(ppd.TaskType, ppd.NewHandler(
		&ppd.Config{Timeout: timeout(ppd.TaskType), MinOverall: cfg.Directory.MinOverall},
		store, directory, obs, log,
	))

	zapLog.Info("Profile workers registered", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	server := newServer(cfg.Server.Address, []readinessCheck{
		{name: "zeebe", check: zeebe.HealthCheck},
		{name: "postgres", check: pg.Ping},
		{name: "redis", check: redis.Ping},
		{name: "elasticsearch", check: esClient.Ping},
	})
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != errServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping Health/Metrics server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
