// Package main is the entrypoint for the SpendWise API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/spendwise/spendwise/internal/advisor"
	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/config"
	"github.com/spendwise/spendwise/internal/handler"
	"github.com/spendwise/spendwise/internal/metrics"
	"github.com/spendwise/spendwise/internal/middleware"
	"github.com/spendwise/spendwise/internal/repository"
	"github.com/spendwise/spendwise/internal/server"
	"github.com/spendwise/spendwise/internal/service"
)

func main() {
	ctx := context.Background()

	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	advisorClient := advisor.NewClient(cfg.AdvisorBaseURL, cfg.AdvisorAPIKey, cfg.AdvisorModel)
	if !cfg.AdvisorEnabled() {
		logger.Warn("advisor API key not set, chat endpoint will return errors")
	}

	recorder := metrics.NewInMemory()
	authService := service.NewAuthService(repo, tokens, recorder)
	expenseService := service.NewExpenseService(repo, recorder)
	budgetService := service.NewBudgetService(repo, recorder)
	goalService := service.NewSavingsGoalService(repo, recorder)
	analyticsService := service.NewAnalyticsService(repo)
	advisorService := advisor.NewService(advisorClient, repo, recorder)

	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo)
	authHandler := handler.NewAuthHandler(authService, logger)
	expenseHandler := handler.NewExpenseHandler(expenseService, logger)
	budgetHandler := handler.NewBudgetHandler(budgetService, logger)
	goalHandler := handler.NewSavingsGoalHandler(goalService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)
	chatHandler := handler.NewChatHandler(advisorService, logger)

	r := setupRouter(routerDeps{
		base:      h,
		health:    healthHandler,
		auth:      authHandler,
		expenses:  expenseHandler,
		budgets:   budgetHandler,
		goals:     goalHandler,
		analytics: analyticsHandler,
		chat:      chatHandler,
		tokens:    tokens,
		repo:      repo,
		cfg:       cfg,
		logger:    logger,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("database", func(ctx context.Context) error {
		repo.Close()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"advisor_enabled", cfg.AdvisorEnabled(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	base      *handler.Handler
	health    *handler.HealthHandler
	auth      *handler.AuthHandler
	expenses  *handler.ExpenseHandler
	budgets   *handler.BudgetHandler
	goals     *handler.SavingsGoalHandler
	analytics *handler.AnalyticsHandler
	chat      *handler.ChatHandler
	tokens    *auth.TokenManager
	repo      *repository.Repository
	cfg       *config.Config
	logger    *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.BodyLimit(deps.cfg.MaxRequestBodySize))

	// Probes (no auth required)
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)

	authCfg := middleware.AuthConfig{
		Logger: deps.logger,
		Tokens: deps.tokens,
		Users:  deps.repo,
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", deps.base.Root)

		r.Post("/auth/register", deps.auth.Register)
		r.Post("/auth/login", deps.auth.Login)

		// Everything below requires a bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", deps.expenses.Create)
				r.Get("/", deps.expenses.List)
				r.Get("/{id}", deps.expenses.Get)
				r.Put("/{id}", deps.expenses.Update)
				r.Delete("/{id}", deps.expenses.Delete)
			})

			r.Route("/budgets", func(r chi.Router) {
				r.Post("/", deps.budgets.Create)
				r.Get("/", deps.budgets.List)
			})

			r.Route("/savings-goals", func(r chi.Router) {
				r.Post("/", deps.goals.Create)
				r.Get("/", deps.goals.List)
				r.Put("/{id}/add-amount", deps.goals.AddAmount)
			})

			r.Get("/analytics/expense-summary", deps.analytics.ExpenseSummary)
			r.Post("/chat", deps.chat.Chat)
		})
	})

	r.NotFound(deps.base.NotFound)
	r.MethodNotAllowed(deps.base.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
