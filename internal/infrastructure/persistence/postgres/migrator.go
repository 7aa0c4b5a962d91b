// internal/infrastructure/persistence/postgres/migrator.go
package postgres

import (
	"crypto/sha256"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"revenue-ledger-bot/pkg/logger"

	"github.com/jmoiron/sqlx"
)

// Migrator управляет миграциями базы данных
type Migrator struct {
	db         *sqlx.DB
	migrations map[int]*Migration
	logger     *logger.Logger
}

// Migration представляет одну миграцию
type Migration struct {
	ID          int
	Name        string
	Description string
	SQL         string
	Checksum    string
}

// MigrationRecord - запись о примененной миграции
type MigrationRecord struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	AppliedAt time.Time `db:"applied_at"`
	Checksum  string    `db:"checksum"`
}

// NewMigrator создает новый мигратор
func NewMigrator(db *sqlx.DB) *Migrator {
	return &Migrator{
		db:         db,
		migrations: make(map[int]*Migration),
		logger:     logger.GetLogger(),
	}
}

// Init инициализирует таблицу миграций
func (m *Migrator) Init() error {
	query := `
	CREATE TABLE IF NOT EXISTS migrations (
		id INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		applied_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		checksum VARCHAR(64) NOT NULL
	);
	`

	_, err := m.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	return nil
}

// LoadMigrations загружает миграции из директории
func (m *Migrator) LoadMigrations(migrationsDir string) error {
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsDir)
	}

	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	// Фильтруем и сортируем SQL файлы (формат: 001_create_revenues.sql)
	var migrationFiles []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".sql") {
			migrationFiles = append(migrationFiles, file.Name())
		}
	}
	sort.Strings(migrationFiles)

	for _, filename := range migrationFiles {
		if err := m.loadMigration(migrationsDir, filename); err != nil {
			return fmt.Errorf("failed to load migration %s: %w", filename, err)
		}
	}

	m.logger.Info("📄 Loaded %d migrations", len(m.migrations))
	return nil
}

// loadMigration загружает одну миграцию из файла
func (m *Migrator) loadMigration(dir, filename string) error {
	id, name, err := parseMigrationFilename(filename)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	m.migrations[id] = &Migration{
		ID:          id,
		Name:        name,
		Description: extractDescription(string(content)),
		SQL:         string(content),
		Checksum:    calculateChecksum(string(content)),
	}

	return nil
}

// Migrate применяет все непройденные миграции
func (m *Migrator) Migrate() error {
	applied, err := m.getAppliedMigrations()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	var appliedCount int
	for id := 1; id <= len(m.migrations); id++ {
		migration, exists := m.migrations[id]
		if !exists {
			return fmt.Errorf("missing migration with ID %d", id)
		}

		// Проверяем, применена ли уже миграция
		if record, ok := applied[id]; ok {
			if record.Checksum != migration.Checksum {
				return fmt.Errorf("checksum mismatch for migration %d: %s", id, migration.Name)
			}
			m.logger.Debug("✅ Migration already applied: %s", migration.Name)
			continue
		}

		if err := m.applyMigration(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %s: %w", id, migration.Name, err)
		}
		appliedCount++
	}

	if appliedCount > 0 {
		m.logger.Info("✅ Applied %d new migrations", appliedCount)
	} else {
		m.logger.Info("✅ Database is up to date")
	}

	return nil
}

func (m *Migrator) getAppliedMigrations() (map[int]*MigrationRecord, error) {
	query := `
	SELECT id, name, applied_at, checksum
	FROM migrations
	ORDER BY id
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]*MigrationRecord)
	for rows.Next() {
		var record MigrationRecord
		var appliedAt sql.NullTime
		if err := rows.Scan(&record.ID, &record.Name, &appliedAt, &record.Checksum); err != nil {
			return nil, fmt.Errorf("failed to scan migration: %w", err)
		}
		if appliedAt.Valid {
			record.AppliedAt = appliedAt.Time
		}
		applied[record.ID] = &record
	}

	return applied, rows.Err()
}

func (m *Migrator) applyMigration(migration *Migration) error {
	m.logger.Info("📤 Applying migration: %s", migration.Name)

	tx, err := m.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.SQL); err != nil {
		return fmt.Errorf("failed to execute migration SQL: %w", err)
	}

	query := `
	INSERT INTO migrations (id, name, description, checksum)
	VALUES ($1, $2, $3, $4)
	`
	_, err = tx.Exec(query, migration.ID, migration.Name, migration.Description, migration.Checksum)
	if err != nil {
		return fmt.Errorf("failed to save migration record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	return nil
}

// Вспомогательные функции

func parseMigrationFilename(filename string) (int, string, error) {
	base := strings.TrimSuffix(filename, ".sql")

	parts := strings.SplitN(base, "_", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid migration filename format: %s (expected: 001_name.sql)", filename)
	}

	var id int
	if _, err := fmt.Sscanf(parts[0], "%d", &id); err != nil {
		return 0, "", fmt.Errorf("invalid migration ID in filename: %s", filename)
	}

	return id, strings.ReplaceAll(parts[1], "_", " "), nil
}

func extractDescription(sqlContent string) string {
	for _, line := range strings.Split(sqlContent, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-- Description:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "-- Description:"))
		}
	}
	return "No description"
}

func calculateChecksum(content string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(content)))
}
