// Package app wires configuration, storage, services, and the HTTP
// transport into a runnable server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/history"
	taskrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/task"
	userrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/taskboard-backend/internal/adapter/smtp"
	jwtauth "github.com/heartmarshall/taskboard-backend/internal/auth"
	"github.com/heartmarshall/taskboard-backend/internal/clock"
	"github.com/heartmarshall/taskboard-backend/internal/config"
	authservice "github.com/heartmarshall/taskboard-backend/internal/service/auth"
	historyservice "github.com/heartmarshall/taskboard-backend/internal/service/history"
	taskservice "github.com/heartmarshall/taskboard-backend/internal/service/task"
	userservice "github.com/heartmarshall/taskboard-backend/internal/service/user"
	"github.com/heartmarshall/taskboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/taskboard-backend/internal/transport/rest"
	"github.com/heartmarshall/taskboard-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies pending migrations, assembles the services and the
// HTTP server, and blocks until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	boardClock, err := clock.New(cfg.Auth.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := applyMigrations(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Repositories.
	users := userrepo.New(pool)
	tasks := taskrepo.New(pool)
	history := historyrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Adapters.
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	var mail *smtp.Mailer
	if cfg.SMTP.Enabled() {
		mail = smtp.New(cfg.SMTP)
	} else {
		logger.Warn("smtp disabled, password recovery unavailable")
	}

	// Services.
	authSvc := newAuthService(logger, users, jwtManager, mail, cfg.Auth)
	taskSvc := taskservice.NewService(logger, tasks, history, txManager, boardClock)
	historySvc := historyservice.NewService(logger, history)
	userSvc := userservice.NewService(logger, users)

	// Transport.
	registerLimiter := middleware.NewRateLimiter(cfg.RateLimit, middleware.NewMemoryCounterStore(cfg.RateLimit.Window))

	router := rest.NewRouter(rest.RouterDeps{
		Auth:            rest.NewAuthHandler(authSvc, logger, cfg.Auth.AccessTokenTTL, cfg.Server.Production),
		Tasks:           rest.NewTaskHandler(taskSvc, boardClock, logger),
		History:         rest.NewHistoryHandler(historySvc, boardClock, logger),
		Users:           rest.NewUserHandler(userSvc, logger),
		Health:          rest.NewHealthHandler(pool, BuildVersion()),
		RegisterLimiter: registerLimiter.Limit(),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authSvc),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// newAuthService keeps the nil-mailer wiring in one place: a typed nil
// *smtp.Mailer must not reach the service as a non-nil interface.
func newAuthService(logger *slog.Logger, users *userrepo.Repo, jwt *jwtauth.JWTManager, mail *smtp.Mailer, cfg config.AuthConfig) *authservice.Service {
	if mail == nil {
		return authservice.NewService(logger, users, jwt, nil, cfg)
	}
	return authservice.NewService(logger, users, jwt, mail, cfg)
}

// applyMigrations runs the embedded goose migrations against the database.
func applyMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if _, err := provider.Up(migrateCtx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
