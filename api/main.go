package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Githubspruchir/InventoryStore/internal/alert"
	"github.com/Githubspruchir/InventoryStore/internal/auth"
	"github.com/Githubspruchir/InventoryStore/internal/cache"
	"github.com/Githubspruchir/InventoryStore/internal/config"
	"github.com/Githubspruchir/InventoryStore/internal/db"
	api "github.com/Githubspruchir/InventoryStore/internal/http"
	"github.com/Githubspruchir/InventoryStore/internal/http/handlers"
	rl "github.com/Githubspruchir/InventoryStore/internal/http/rate_limiter"
	"github.com/Githubspruchir/InventoryStore/internal/repo"
	"github.com/Githubspruchir/InventoryStore/internal/stock"
	"github.com/Githubspruchir/InventoryStore/internal/storage"
)

// @title Inventory Store API
// @version 1.0
// @description REST API for managing inventory products, stock levels and images.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	slog.SetDefault(newLogger(cfg.LogLevel))
	auth.Configure(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	productRepo := repo.NewPostgresProductRepository(database)
	handlers.SetStockPolicy(stock.NewPolicy(productRepo))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetBcryptCost(cfg.BcryptCost)

	images, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("could not prepare image store: %v", err)
	}
	handlers.SetImageStore(images)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetProductCache(cache.NewProductCache(rdb, ctx))
	}

	handlers.SetAlertPublisher(alert.NewPublisher(cfg.AMQPURL))

	go rl.StartVisitorCleanupLoop()

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      api.NewRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
