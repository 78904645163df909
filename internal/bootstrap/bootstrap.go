// Package bootstrap wires configuration, database, dependencies and routing
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/escoladigital/sge/internal/app/controllers"
	"github.com/escoladigital/sge/internal/app/migrations"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/app/routes"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/config"
	"github.com/escoladigital/sge/internal/db"
	"github.com/escoladigital/sge/internal/middleware"
	"github.com/escoladigital/sge/internal/pkg/auth"
	"github.com/escoladigital/sge/internal/pkg/logger"
	"github.com/escoladigital/sge/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	JWTService *auth.JWTService

	AuthService       *services.AuthService
	ProfessorService  *services.ProfessorService
	SecretariaService *services.SecretariaService
	AlunoService      *services.AlunoService
	MateriaService    *services.MateriaService
	TurmaService      *services.TurmaService
	HistoricoService  *services.HistoricoService

	AuthController       *controllers.AuthController
	ProfessorController  *controllers.ProfessorController
	SecretariaController *controllers.SecretariaController
	AlunoController      *controllers.AlunoController
	MateriaController    *controllers.MateriaController
	TurmaController      *controllers.TurmaController
	HistoricoController  *controllers.HistoricoController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is honored when present.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

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

// SetupDatabase establishes the database connection, runs migrations and
// optionally seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}
	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	usuarioRepo := repositories.NewUsuarioRepository(dbPool)
	professorRepo := repositories.NewProfessorRepository(dbPool)
	secretariaRepo := repositories.NewSecretariaRepository(dbPool)
	alunoRepo := repositories.NewAlunoRepository(dbPool)
	materiaRepo := repositories.NewMateriaRepository(dbPool)
	turmaRepo := repositories.NewTurmaRepository(dbPool)
	historicoRepo := repositories.NewHistoricoRepository(dbPool)

	deps.AuthService = services.NewAuthService(usuarioRepo, deps.JWTService)
	deps.ProfessorService = services.NewProfessorService(dbPool, usuarioRepo, professorRepo)
	deps.SecretariaService = services.NewSecretariaService(dbPool, usuarioRepo, secretariaRepo)
	deps.AlunoService = services.NewAlunoService(dbPool, usuarioRepo, alunoRepo)
	deps.MateriaService = services.NewMateriaService(materiaRepo)
	deps.TurmaService = services.NewTurmaService(turmaRepo)
	deps.HistoricoService = services.NewHistoricoService(historicoRepo)

	deps.AuthController = controllers.NewAuthController(deps.AuthService)
	deps.ProfessorController = controllers.NewProfessorController(deps.ProfessorService)
	deps.SecretariaController = controllers.NewSecretariaController(deps.SecretariaService)
	deps.AlunoController = controllers.NewAlunoController(deps.AlunoService, deps.HistoricoService)
	deps.MateriaController = controllers.NewMateriaController(deps.MateriaService)
	deps.TurmaController = controllers.NewTurmaController(deps.TurmaService)
	deps.HistoricoController = controllers.NewHistoricoController(deps.HistoricoService)

	return deps, nil
}

// SetupRouter configures the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	routes.SetupRouter(router,
		deps.AuthController,
		deps.ProfessorController,
		deps.SecretariaController,
		deps.AlunoController,
		deps.MateriaController,
		deps.TurmaController,
		deps.HistoricoController,
		middleware.JWTAuth(deps.JWTService),
	)

	return router
}
