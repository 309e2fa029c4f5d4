package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-bloglist/internal/auth"
	"github.com/sbilibin2017/gw-bloglist/internal/config"
	"github.com/sbilibin2017/gw-bloglist/internal/handlers"
	"github.com/sbilibin2017/gw-bloglist/internal/jwt"
	"github.com/sbilibin2017/gw-bloglist/internal/logger"
	"github.com/sbilibin2017/gw-bloglist/internal/middlewares"
	"github.com/sbilibin2017/gw-bloglist/internal/migrations"
	"github.com/sbilibin2017/gw-bloglist/internal/repositories"
	"github.com/sbilibin2017/gw-bloglist/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-bloglist/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-bloglist API
// @version 1.0.0
// @description Multi-user blog list service with owner-only blog mutations
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka and the HTTP server.
// It blocks until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaBlogTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaBlogTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, blog events will not be published")
	}

	codec := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	blogReadRepo := repositories.NewBlogReaderRepository(db, middlewares.GetTxFromContext)
	blogWriteRepo := repositories.NewBlogWriterRepository(db, middlewares.GetTxFromContext)
	blogCacheRepo := repositories.NewBlogListCacheRepository(rdb, cfg.BlogListTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, codec, cfg.BcryptCost)
	blogService := services.NewBlogService(
		blogReadRepo,
		blogWriteRepo,
		userWriteRepo,
		blogCacheRepo,
		kafkaWriter,
		middlewares.OnCommit,
	)

	router := handlers.NewRouter(handlers.RouterDeps{
		Registerer: authService,
		Loginer:    authService,
		Users:      services.NewUserService(userReadRepo),
		Blogs:      blogService,
		Stats:      services.NewStatsService(blogService),
		Resolver:   auth.NewResolver(codec, userReadRepo),
		DB:         db,
		SwaggerURL: fmt.Sprintf("http://%s/swagger/doc.json", cfg.HTTPAddr()),
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: router,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
