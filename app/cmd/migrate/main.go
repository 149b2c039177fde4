package main

import (
	"embed"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"portal-api/app/config"
	"portal-api/app/utils/database"
	"portal-api/app/utils/logger"
	"portal-api/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status)")
		steps   = flag.Int("steps", 1, "Number of migrations to roll back with -command=down")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}
	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}

	conn, err := database.Open(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	runner := migration.NewRunner(conn.DB(), appLogger, migrationsFS)

	switch *command {
	case "up":
		if err := runner.Up(); err != nil {
			appLogger.Error("migration up failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("all migrations applied")

	case "down":
		if err := runner.Down(*steps); err != nil {
			appLogger.Error("migration down failed", "error", err)
			os.Exit(1)
		}

	case "status":
		if err := runner.Status(); err != nil {
			appLogger.Error("migration status failed", "error", err)
			os.Exit(1)
		}

	default:
		appLogger.Error("unknown command", "command", *command)
		os.Exit(1)
	}
}
