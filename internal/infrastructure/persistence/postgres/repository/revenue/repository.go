// internal/infrastructure/persistence/postgres/repository/revenue/repository.go
package revenue

import (
	"context"
	"fmt"

	"revenue-ledger-bot/internal/infrastructure/persistence/postgres/models"

	"github.com/jmoiron/sqlx"
)

// Repository интерфейс для работы с доходами
type Repository interface {
	Insert(ctx context.Context, amount int, currency, platform, customer, project string) (*models.Revenue, error)
	FindAll(ctx context.Context) ([]models.Revenue, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// RepositoryImpl реализация репозитория доходов
type RepositoryImpl struct {
	db *sqlx.DB
}

// NewRepository создает новый репозиторий доходов
func NewRepository(db *sqlx.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// Insert записывает новый доход. Идентификатор и отметка времени
// назначаются базой данных и возвращаются в записи.
func (r *RepositoryImpl) Insert(ctx context.Context, amount int, currency, platform, customer, project string) (*models.Revenue, error) {
	query := `
    INSERT INTO dc_revenues (amount, currency, platform, customer, project, date)
    VALUES ($1, $2, $3, $4, $5, NOW())
    RETURNING id, amount, currency, platform, customer, project, date
    `

	var record models.Revenue
	err := r.db.QueryRowxContext(ctx, query,
		fmt.Sprintf("%d", amount),
		currency,
		platform,
		customer,
		project,
	).StructScan(&record)
	if err != nil {
		return nil, fmt.Errorf("failed to insert revenue: %w", err)
	}

	return &record, nil
}

// FindAll возвращает все записи доходов без фильтрации и сортировки
func (r *RepositoryImpl) FindAll(ctx context.Context) ([]models.Revenue, error) {
	query := `
    SELECT id, amount, currency, platform, customer, project, date
    FROM dc_revenues
    `

	var records []models.Revenue
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to select revenues: %w", err)
	}

	return records, nil
}

// DeleteByID удаляет запись по идентификатору.
// Возвращает false, если записи с таким id не существует.
func (r *RepositoryImpl) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dc_revenues WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete revenue %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

var _ Repository = (*RepositoryImpl)(nil)
