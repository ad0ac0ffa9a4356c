package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yraj/offerdesk/docs" // Import generated swagger docs
	appControllers "github.com/yraj/offerdesk/internal/app/controllers"
	appMigrations "github.com/yraj/offerdesk/internal/app/migrations"
	appRepos "github.com/yraj/offerdesk/internal/app/repositories"
	appRoutes "github.com/yraj/offerdesk/internal/app/routes"
	appServices "github.com/yraj/offerdesk/internal/app/services"
	"github.com/yraj/offerdesk/internal/config"
	"github.com/yraj/offerdesk/internal/db"
	"github.com/yraj/offerdesk/internal/metrics"
	appMiddleware "github.com/yraj/offerdesk/internal/middleware"
	pkgAuth "github.com/yraj/offerdesk/internal/pkg/auth"
	"github.com/yraj/offerdesk/internal/pkg/letter"
	"github.com/yraj/offerdesk/internal/pkg/logger"
	"github.com/yraj/offerdesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	CourseService     appServices.CourseService
	StudentService    appServices.StudentService
	LetterService     appServices.LetterService
	AuthController    *appControllers.AuthController
	CourseController  *appControllers.CourseController
	StudentController *appControllers.StudentController
	LetterController  *appControllers.LetterController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Metrics           *metrics.Metrics
	Registry          *prometheus.Registry
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Default data failures are logged, not fatal
	if err := seed.CreateDefaultData(ctx, database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.New(deps.Registry)

	// Durations were validated during config load
	accessExp, _ := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	refreshExp, _ := time.ParseDuration(cfg.JWT.RefreshTokenExpiration)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  accessExp,
		RefreshTokenExp: refreshExp,
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.RefreshTokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.LastIDRepository,
		lgr,
	)

	producer := letter.NewProducer(cfg.Letter.ChromePath, cfg.GetLetterRenderTimeout())
	letterService, err := appServices.NewLetterService(cfg.Letter.TemplatePath, producer, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("template", cfg.Letter.TemplatePath).Msg("Failed to load offer letter template")
		return nil, fmt.Errorf("failed to initialize letter service: %w", err)
	}
	deps.LetterService = letterService

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.Metrics)
	deps.LetterController = appControllers.NewLetterController(deps.LetterService, deps.StudentService, deps.Metrics)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.Default()
	router.Use(deps.Metrics.GinMiddleware())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.StudentController,
		deps.LetterController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
