package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/identity"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/pedidos/backend/internal/infrastructure/config"
	"github.com/pedidos/backend/internal/infrastructure/logger"
	"github.com/pedidos/backend/internal/infrastructure/migration"
	"github.com/pedidos/backend/internal/infrastructure/persistence"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

func main() {
	var (
		migrationsPath string
		logLevel       string
	)

	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (default: ./migrations)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if command == "seed" {
		if err := seed(cfg, log); err != nil {
			log.Fatal("Seed failed", zap.Error(err))
		}
		return
	}

	migrationsPath = resolveMigrationsPath(migrationsPath)
	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("Failed to get absolute path", zap.Error(err))
	}
	migrationsPath = absPath

	log.Info("Migration CLI started",
		zap.String("command", command),
		zap.String("migrations_path", migrationsPath),
	)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	m, err := migration.New(db, migrationsPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}

	case "down":
		if err := m.Down(); err != nil {
			log.Fatal("Migration down failed", zap.Error(err))
		}

	case "step":
		if len(args) < 2 {
			log.Fatal("Step count required. Usage: migrate step <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid step count", zap.String("value", args[1]))
		}
		if err := m.Steps(n); err != nil {
			log.Fatal("Migration step failed", zap.Error(err))
		}

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatal("Failed to get version", zap.Error(err))
		}
		if version == 0 {
			log.Info("No migrations applied")
		} else {
			log.Info("Current migration version",
				zap.Uint("version", version),
				zap.Bool("dirty", dirty),
			)
		}

	case "force":
		if len(args) < 2 {
			log.Fatal("Version required. Usage: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version number", zap.String("value", args[1]))
		}
		log.Warn("Forcing migration version - use with caution!")
		if err := m.Force(version); err != nil {
			log.Fatal("Force version failed", zap.Error(err))
		}

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

// resolveMigrationsPath looks for the migrations directory next to the
// working directory first, then next to the executable.
func resolveMigrationsPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(defaultMigrationsPath); err == nil {
		return defaultMigrationsPath
	}
	execPath, err := os.Executable()
	if err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), "..", "..", defaultMigrationsPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return defaultMigrationsPath
}

type seedItem struct {
	name        string
	description string
	category    string
	size        string
	stock       int
}

type seedUser struct {
	username string
	password string
	role     identity.Role
}

var seedItems = []seedItem{
	{"Camiseta uniforme", "Camiseta do uniforme escolar em malha fria", "Uniforme", "P", 30},
	{"Camiseta uniforme", "Camiseta do uniforme escolar em malha fria", "Uniforme", "M", 40},
	{"Camiseta uniforme", "Camiseta do uniforme escolar em malha fria", "Uniforme", "G", 35},
	{"Mochila escolar", "Mochila padrão com o logo da escola", "Acessório", "", 20},
	{"Kit material básico", "Caderno, lápis, borracha e régua", "Material", "", 50},
}

var seedUsers = []seedUser{
	{"coordenacao", "coordenacao123", identity.RoleCoordination},
	{"estoque", "estoque123", identity.RoleStock},
}

// seed populates the catalog and admin accounts. Existing rows are
// left untouched so the command is safe to run repeatedly.
func seed(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	userRepo := persistence.NewGormUserRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)

	for _, su := range seedUsers {
		_, err := userRepo.FindByUsername(ctx, su.username)
		if err == nil {
			log.Info("User already exists, skipping", zap.String("username", su.username))
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("failed to look up user %s: %w", su.username, err)
		}

		user, err := identity.NewUser(su.username, su.password, su.role)
		if err != nil {
			return fmt.Errorf("failed to build user %s: %w", su.username, err)
		}
		if err := userRepo.Save(ctx, user); err != nil {
			return fmt.Errorf("failed to save user %s: %w", su.username, err)
		}
		log.Info("User created",
			zap.String("username", su.username),
			zap.String("role", su.role.String()),
		)
	}

	for _, si := range seedItems {
		var count int64
		if err := db.DB.WithContext(ctx).Model(&catalog.Item{}).
			Where("name = ? AND size = ?", si.name, si.size).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to look up item %s: %w", si.name, err)
		}
		if count > 0 {
			log.Info("Item already exists, skipping",
				zap.String("name", si.name),
				zap.String("size", si.size),
			)
			continue
		}

		item, err := catalog.NewItem(si.name, si.description, si.category, si.size, si.stock)
		if err != nil {
			return fmt.Errorf("failed to build item %s: %w", si.name, err)
		}
		if err := itemRepo.Save(ctx, item); err != nil {
			return fmt.Errorf("failed to save item %s: %w", si.name, err)
		}
		log.Info("Item created",
			zap.String("name", si.name),
			zap.String("size", si.size),
			zap.Int("stock", si.stock),
		)
	}

	log.Info("Seed completed")
	return nil
}

func printUsage() {
	fmt.Println(`Pedidos Database Migration Tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up               Apply all pending migrations
  down             Roll back all migrations
  step <n>         Apply n migrations (positive=up, negative=down)
  version          Show current migration version
  force <version>  Force set migration version (use with caution)
  seed             Insert the starter catalog and admin accounts

Flags:
  -path string       Path to migrations directory (default: ./migrations)
  -log-level string  Log level: debug, info, warn, error (default: info)

Examples:
  # Apply all pending migrations
  migrate up

  # Roll back the last migration
  migrate step -1

  # Check current version
  migrate version

  # Load starter data
  migrate seed`)
}
