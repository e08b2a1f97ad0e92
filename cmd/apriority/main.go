package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apriority/miniapp/internal/api"
	_ "github.com/apriority/miniapp/internal/api/docs"
	"github.com/apriority/miniapp/internal/backend"
	"github.com/apriority/miniapp/internal/config"
	"github.com/apriority/miniapp/internal/database"
	"github.com/apriority/miniapp/internal/handler"
	"github.com/apriority/miniapp/internal/logger"
	"github.com/apriority/miniapp/internal/middleware"
	"github.com/apriority/miniapp/internal/preferences"
	"github.com/apriority/miniapp/internal/screen"
	"github.com/apriority/miniapp/internal/static"
	"github.com/apriority/miniapp/internal/telegram"
	"github.com/apriority/miniapp/internal/template"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/urfave/cli/v2"
)

//	@title			APRiority Mini App API
//	@version		1.0
//	@description	Profitability data of NFT collections shown in the APRiority Telegram Mini App.
//	@BasePath		/

func main() {
	// Variables from .env fill in what the environment does not set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env file", "error", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:  "apriority",
		Usage: "Telegram Mini App for NFT collection yields on TON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "backend-url",
				Aliases: []string{"b"},
				Value:   config.DefaultBackendURL,
				Usage:   "APRiority backend URL",
				EnvVars: []string{"BACKEND_URL"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL URL for per-user preferences (optional)",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:    "bot-token",
				Usage:   "Telegram bot token used to verify launch data (optional)",
				EnvVars: []string{"BOT_TOKEN"},
			},
			&cli.DurationFlag{
				Name:    "init-data-max-age",
				Value:   config.DefaultInitDataMaxAge,
				Usage:   "Maximum age of Telegram launch data",
				EnvVars: []string{"INIT_DATA_MAX_AGE"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file with listing conditions, support link and manifest URL",
				EnvVars: []string{"CONFIG"},
			},
			&cli.IntFlag{
				Name:    "rate-limit",
				Value:   config.DefaultRateLimit,
				Usage:   "Requests per minute per IP address",
				EnvVars: []string{"RATE_LIMIT"},
			},
			&cli.DurationFlag{
				Name:    "request-timeout",
				Value:   config.DefaultRequestTimeout,
				Usage:   "Timeout of every backend call",
				EnvVars: []string{"REQUEST_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	port := c.String("port")

	settings, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := backend.New(c.String("backend-url"), backend.WithTimeout(c.Duration("request-timeout")))
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	prefs, closeDB, err := setupPreferences(c.Context, c.String("database-url"))
	if err != nil {
		return err
	}
	defer closeDB()

	var validator handler.InitDataValidator
	if token := c.String("bot-token"); token != "" {
		v, err := telegram.NewValidator(token, c.Duration("init-data-max-age"))
		if err != nil {
			return fmt.Errorf("failed to create init data validator: %w", err)
		}
		validator = v
	} else {
		slog.Warn("no bot token configured, launch data is not verified")
	}

	tmpl, err := template.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	guard := screen.NewGuard()
	defer guard.Close()

	h, err := handler.New(client, tmpl, prefs, guard, validator, settings)
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}
	apiHandler, err := api.New(client)
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	apiHandler.RegisterRoutes(mux)
	mux.Handle("GET /static/", http.StripPrefix("/static/", static.Handler()))
	mux.HandleFunc("GET /favicon.svg", static.Favicon)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	limiter, err := middleware.NewRateLimiter(c.Int("rate-limit"), "/static/", "/favicon.svg", "/swagger/")
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}
	defer limiter.Close()

	server := &http.Server{
		Addr: ":" + port,
		Handler: middleware.Chain(mux,
			middleware.Recover,
			middleware.Logger,
			limiter.Middleware,
			middleware.CacheControl,
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port, "backend_url", c.String("backend-url"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// setupPreferences connects the optional preference database. Without a
// database URL preferences live in cookies only.
func setupPreferences(ctx context.Context, databaseURL string) (*preferences.Store, func(), error) {
	if databaseURL == "" {
		slog.Info("no database configured, preferences are stored in cookies only")
		return preferences.NewStore(nil), func() {}, nil
	}

	pool, err := database.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repo, err := preferences.NewPostgresRepository(pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return preferences.NewStore(repo), pool.Close, nil
}
