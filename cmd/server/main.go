package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"yomu/internal/analyzer"
	"yomu/internal/cache"
	"yomu/internal/config"
	"yomu/internal/db"
	"yomu/internal/dictionary"
	"yomu/internal/disambig"
	"yomu/internal/gateway"
	"yomu/internal/handlers/api"
	"yomu/internal/jobs"
	"yomu/internal/metrics"
	"yomu/internal/selection"
	"yomu/internal/server"
	"yomu/internal/service"
	"yomu/internal/validation"
)

// redisPinger reports Redis reachability on /api/health.
type redisPinger struct {
	storage *redis.Storage
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.storage.Conn().Ping(ctx).Err()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	health := map[string]api.Pinger{"database": database}

	// Redis backs both the entry cache and the session store. Interfaces stay
	// nil when it is not configured.
	var (
		sessionStorage fiber.Storage
		entryCache     dictionary.Cache
	)
	if cfg.RedisURL != "" {
		storage := cache.NewRedisStorage(cfg.RedisURL)
		defer storage.Close()
		sessionStorage = storage
		entryCache = cache.New(storage, cfg.CacheTTL)
		health["redis"] = redisPinger{storage: storage}
		log.Println("Redis cache and session storage enabled")
	} else {
		log.Println("Redis is disabled. Set REDIS_URL to enable caching and shared sessions.")
	}

	// Seeding goes through the editor so lookups cached from a previous run
	// are dropped with the entries they describe.
	if yamlCfg.ShouldSeed(cfg.IsDev()) {
		editor := dictionary.NewEditor(database, entryCache, slog.Default())
		if err := editor.Seed(ctx, db.DevEntries); err != nil {
			log.Printf("Warning: failed to seed dev entries: %v", err)
		}
	}
	if n, err := database.CountEntries(ctx); err == nil {
		log.Printf("Dictionary holds %d entries", n)
	}

	metrics.Init(database)

	kagome, err := analyzer.NewKagome()
	if err != nil {
		log.Fatalf("Failed to load morphological dictionary: %v", err)
	}

	repo := dictionary.NewRepository(database, entryCache, metrics.RecordTermLookup, slog.Default())
	svc := service.NewLookupService(kagome, repo, service.Options{PruneMeanings: cfg.PruneMeanings}, slog.Default())

	resolver := disambig.NewResolver(disambig.DefaultTable.With(yamlCfg.POSOverrides()))

	var reader selection.Looker = svc
	if cfg.UsesRemoteLookup() {
		if ok, msg := validation.ValidateURL(cfg.LookupURL); !ok {
			log.Fatalf("Invalid LOOKUP_URL: %s", msg)
		}
		client := gateway.NewClient(cfg.LookupURL, cfg.LookupTimeout, slog.Default())
		reader = client
		log.Printf("Reader submits queries to %s", client.URL())
	}

	registry := selection.NewRegistry()
	janitor := jobs.NewSessionJanitor(registry, cfg.JanitorInterval, cfg.SessionIdleTimeout)
	go janitor.Start(ctx)

	srv := server.New(cfg, sessionStorage)
	srv.RegisterRoutes(server.Deps{
		Service:  svc,
		Reader:   reader,
		Resolver: resolver,
		Registry: registry,
		Health:   health,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	repo.Wait()
	metrics.Wait()
	log.Println("Server exited")
}
