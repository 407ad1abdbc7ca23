package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/riskibarqy/team-manager/internal/app"
	"github.com/riskibarqy/team-manager/internal/config"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
)

var migrationDirs = []string{"./db/migrations", "/app/db/migrations"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName+"-migration")

	if err := run(cfg, logger, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("migration failed", "command", os.Args[1], "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, logger *logging.Logger, command string, args []string) error {
	if !cfg.UsesPostgres() {
		return errors.New("DB_URL is required")
	}
	dir, err := resolveMigrationsDir(os.Getenv("MIGRATIONS_DIR"))
	if err != nil {
		return err
	}

	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, app.DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	switch strings.ToLower(strings.TrimSpace(command)) {
	case "up":
		if err := ignoreNoChange(m.Up()); err != nil {
			return err
		}
		logger.Info("migrations applied", "source", sourceURL)
	case "down":
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Steps(-steps)); err != nil {
			return err
		}
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("no migration applied")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		logger.Info("migration version", "version", version, "dirty", dirty)
	case "force":
		version, err := parseVersion(args)
		if err != nil {
			return err
		}
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		logger.Info("migration version forced", "version", version)
	case "goto":
		version, err := parseVersion(args)
		if err != nil {
			return err
		}
		if err := ignoreNoChange(m.Migrate(version)); err != nil {
			return err
		}
		logger.Info("migrated", "version", version)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("down steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}

func parseVersion(args []string) (uint, error) {
	if len(args) == 0 {
		return 0, errors.New("a version argument is required")
	}
	value, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	return uint(value), nil
}

func resolveMigrationsDir(override string) (string, error) {
	candidates := migrationDirs
	if override = strings.TrimSpace(override); override != "" {
		candidates = append([]string{override}, migrationDirs...)
	}

	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("migration directory not found (checked %s)", strings.Join(candidates, ", "))
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down [n]|version|force <v>|goto <v>>\n", name)
}
