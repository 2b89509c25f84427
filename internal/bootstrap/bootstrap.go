package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/dquispe/sufragio/internal/app/controllers"
	appMigrations "github.com/dquispe/sufragio/internal/app/migrations"
	appRepos "github.com/dquispe/sufragio/internal/app/repositories"
	appRoutes "github.com/dquispe/sufragio/internal/app/routes"
	appServices "github.com/dquispe/sufragio/internal/app/services"
	"github.com/dquispe/sufragio/internal/config"
	"github.com/dquispe/sufragio/internal/db"
	appMiddleware "github.com/dquispe/sufragio/internal/middleware"
	"github.com/dquispe/sufragio/internal/pkg/logger"
	"github.com/dquispe/sufragio/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	CentroService        appServices.CentroService
	PartidoService       appServices.PartidoService
	EleccionService      appServices.EleccionService
	AgrupacionService    appServices.AgrupacionService
	CandidatoService     appServices.CandidatoService
	AuthController       *appControllers.AuthController
	CentroController     *appControllers.CentroController
	PartidoController    *appControllers.PartidoController
	EleccionController   *appControllers.EleccionController
	AgrupacionController *appControllers.AgrupacionController
	CandidatoController  *appControllers.CandidatoController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the sample dataset when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := config.GetEnv("MIGRATIONS_DIR", "migrations")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// A failed seed is logged, not fatal
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	txManager := &db.PostgresDB{Pool: dbPool}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UsuarioRepository,
		deps.Repos.MesaRepository,
		txManager,
		lgr,
	)
	deps.CentroService = appServices.NewCentroService(deps.Repos.CentroRepository, deps.Repos.MesaRepository)
	deps.PartidoService = appServices.NewPartidoService(deps.Repos.PartidoRepository)
	deps.EleccionService = appServices.NewEleccionService(deps.Repos.EleccionRepository)
	deps.AgrupacionService = appServices.NewAgrupacionService(deps.Repos.AgrupacionRepository, deps.Repos.PlanRepository)
	deps.CandidatoService = appServices.NewCandidatoService(deps.Repos.CandidatoRepository, deps.Repos.PlanRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CentroController = appControllers.NewCentroController(deps.CentroService)
	deps.PartidoController = appControllers.NewPartidoController(deps.PartidoService)
	deps.EleccionController = appControllers.NewEleccionController(deps.EleccionService)
	deps.AgrupacionController = appControllers.NewAgrupacionController(deps.AgrupacionService)
	deps.CandidatoController = appControllers.NewCandidatoController(deps.CandidatoService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CentroController,
		deps.PartidoController,
		deps.EleccionController,
		deps.AgrupacionController,
		deps.CandidatoController,
	)

	return router
}
