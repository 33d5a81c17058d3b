package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Badal10-droid/resort-backend/internal/config"
	"github.com/Badal10-droid/resort-backend/internal/dashboard"
	"github.com/Badal10-droid/resort-backend/internal/expense"
	"github.com/Badal10-droid/resort-backend/internal/income"
	"github.com/Badal10-droid/resort-backend/internal/reports"
	"github.com/Badal10-droid/resort-backend/internal/router"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	// Amounts must serialize as JSON numbers, the way the dashboard expects.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := newPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating pgx pool")
	}
	defer pool.Close()

	// Refuse to serve without a confirmed store connection.
	if err := pool.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("error pinging database")
	}
	logger.Info().Msg("database connected")

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(logger),
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK"})
	})

	incomeRepo := income.NewRepository(pool)
	expenseRepo := expense.NewRepository(pool)
	engine := dashboard.NewEngine(incomeRepo, expenseRepo)

	r := &router.Router{
		IncomeHandler:    income.NewHandler(incomeRepo),
		ExpenseHandler:   expense.NewHandler(expenseRepo),
		DashboardHandler: dashboard.NewHandler(engine),
		ReportsHandler:   reports.NewHandler(engine),
		WriteLimiter:     router.RateLimitWrite(cfg.RateLimitMax, cfg.RateLimitWindow),
	}
	r.RegisterRoutes(app)

	logger.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// errorHandler renders every error as {"error": message} and logs it, so no
// failure is silently swallowed.
func errorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		logger.Error().
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg(message)

		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}

func requestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
