package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-task-assistant/internal/handlers"
	"github.com/sbilibin2017/gw-task-assistant/internal/jwt"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/middlewares"
	"github.com/sbilibin2017/gw-task-assistant/internal/migrations"
	"github.com/sbilibin2017/gw-task-assistant/internal/password"
	"github.com/sbilibin2017/gw-task-assistant/internal/repositories"
	"github.com/sbilibin2017/gw-task-assistant/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-task-assistant/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/crypto/bcrypt"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-task-assistant API
// @version 1.0.0
// @description Backend for user tasks and assistant conversations
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, JWT, hashing and Kafka settings.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	jwtSecretKey string
	jwtExpSecond int

	bcryptCost int

	kafkaAddr  string
	kafkaTopic string
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config. The default secret is for development only.
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "1800")); err != nil {
		return
	}

	// Password hashing config
	if cfg.bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))); err != nil {
		return
	}

	// Kafka config, optional: no address disables event publishing
	cfg.kafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "task-events")

	return
}

// run initializes the logger, database, migrations, Kafka writer, and
// HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	// Run migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		logger.Log.Errorw("failed to run migrations", "error", err)
		return err
	}

	// Initialize Kafka writer for task events
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaAddr),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT and password hashing services
	jwtSvc := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)
	hasher := password.New(password.WithCost(cfg.bcryptCost))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	taskReadRepo := repositories.NewTaskReadRepository(db)
	taskWriteRepo := repositories.NewTaskWriteRepository(db, middlewares.GetTxFromContext)
	convReadRepo := repositories.NewConversationReadRepository(db)
	convWriteRepo := repositories.NewConversationWriteRepository(db, middlewares.GetTxFromContext)
	msgReadRepo := repositories.NewMessageReadRepository(db)
	msgWriteRepo := repositories.NewMessageWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher, jwtSvc)
	taskService := services.NewTaskService(taskReadRepo, taskWriteRepo, kafkaWriter)
	convService := services.NewConversationService(convReadRepo, convWriteRepo, msgReadRepo, msgWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware())
	r.Use(middlewares.TxMiddleware(db))

	// Public routes
	r.Post("/token", handlers.NewTokenHandler(authService))
	r.Post("/users/", handlers.NewRegisterHandler(authService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))

		r.Post("/tasks", handlers.NewTaskCreateHandler(taskService))
		r.Get("/tasks", handlers.NewTaskListHandler(taskService))
		r.Patch("/tasks/{taskID}", handlers.NewTaskUpdateHandler(taskService))
		r.Post("/tasks/{taskID}/complete", handlers.NewTaskCompleteHandler(taskService))
		r.Delete("/tasks/{taskID}", handlers.NewTaskDeleteHandler(taskService))

		r.Post("/conversations", handlers.NewConversationCreateHandler(convService))
		r.Get("/conversations", handlers.NewConversationListHandler(convService))
		r.Get("/conversations/{conversationID}", handlers.NewConversationGetHandler(convService))
		r.Patch("/conversations/{conversationID}", handlers.NewConversationUpdateHandler(convService))
		r.Post("/conversations/{conversationID}/messages", handlers.NewMessageCreateHandler(convService))
		r.Get("/conversations/{conversationID}/messages", handlers.NewMessageListHandler(convService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
