package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
	authpg "github.com/hotelops/hotel-operations/internal/auth/postgres"
	"github.com/hotelops/hotel-operations/internal/candidate"
	candidatepg "github.com/hotelops/hotel-operations/internal/candidate/postgres"
	"github.com/hotelops/hotel-operations/internal/dailyreport"
	dailyreportpg "github.com/hotelops/hotel-operations/internal/dailyreport/postgres"
	"github.com/hotelops/hotel-operations/internal/operational"
	"github.com/hotelops/hotel-operations/internal/org"
	orgpg "github.com/hotelops/hotel-operations/internal/org/postgres"
	"github.com/hotelops/hotel-operations/internal/report"
	reportpg "github.com/hotelops/hotel-operations/internal/report/postgres"
	"github.com/hotelops/hotel-operations/internal/transport/rest"
	"github.com/hotelops/hotel-operations/internal/user"
	userpg "github.com/hotelops/hotel-operations/internal/user/postgres"
	"github.com/hotelops/hotel-operations/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenTTL,
		config.Security.RefreshTokenTTL,
	)

	authService := auth.NewService(authpg.NewAuthRepository(gormDB), tokenGen, lg)
	reportService := report.NewService(reportpg.NewReportRepository(gormDB), lg)
	dailyService := dailyreport.NewService(dailyreportpg.NewDailyReportRepository(gormDB), lg)
	userService := user.NewService(userpg.NewUserRepository(gormDB), config.Security.BCryptCost, lg)
	orgService := org.NewService(orgpg.NewOrgRepository(gormDB), lg)
	operationalService := operational.NewService(lg)

	files, err := candidate.NewFileStore(config.Uploads)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cv store: %w", err)
	}
	candidateService := candidate.NewService(
		candidatepg.NewCandidateRepository(gormDB),
		candidatepg.NewCommentRepository(gormDB),
		files, lg)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService),
		User:        user.NewHandler(userService),
		Report:      report.NewHandler(reportService),
		DailyReport: dailyreport.NewHandler(dailyService),
		Candidate:   candidate.NewHandler(candidateService),
		Org:         org.NewHandler(orgService),
		Operational: operational.NewHandler(operationalService),
	}

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
