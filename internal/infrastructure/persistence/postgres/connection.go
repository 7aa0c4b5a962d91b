package postgres

import (
	"fmt"
	"path/filepath"

	"revenue-ledger-bot/internal/infrastructure/config"
	"revenue-ledger-bot/pkg/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect открывает подключение к PostgreSQL и применяет миграции
func Connect(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	// Настройки пула соединений
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	// Проверка подключения
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("✅ Connected to PostgreSQL")

	// Выполняем миграции
	if cfg.EnableAutoMigrate && cfg.MigrationsPath != "" {
		if err := RunMigrations(db, cfg.MigrationsPath); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return db, nil
}

// RunMigrations применяет миграции из директории
func RunMigrations(db *sqlx.DB, migrationsPath string) error {
	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	logger.Info("📂 Running migrations from: %s", absPath)

	migrator := NewMigrator(db)

	if err := migrator.Init(); err != nil {
		return fmt.Errorf("failed to init migrations table: %w", err)
	}

	if err := migrator.LoadMigrations(absPath); err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	if err := migrator.Migrate(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("✅ Database migrations completed successfully")
	return nil
}
