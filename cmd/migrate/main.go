package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("error pinging database")
	}

	sqlBytes, err := os.ReadFile("migrations/migrations.sql")
	if err != nil {
		logger.Fatal().Err(err).Msg("error reading migrations file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info().Msg("applying migrations")
	if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
		logger.Fatal().Err(err).Msg("error applying migrations")
	}

	logger.Info().Msg("migrations applied")
}
