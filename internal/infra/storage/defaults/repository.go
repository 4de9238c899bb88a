package defaults

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

// Repository репозиторий настроек генерации слотов по компаниям
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCompanyID получает настройки генерации компании
func (r *Repository) GetByCompanyID(ctx context.Context, companyID int64) (*domain.CompanyDefaults, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"company_id",
		"start_hour",
		"end_hour",
		"slot_duration_hours",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("company_defaults").
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyID - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.CompanyDefaults
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.CompanyID,
		&d.StartHour,
		&d.EndHour,
		&d.SlotDurationHours,
		&d.Capacity,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDefaultsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyID - scan defaults: %v", ErrScanRow, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

// Upsert создает или обновляет настройки генерации компании
func (r *Repository) Upsert(ctx context.Context, d *domain.CompanyDefaults) (*domain.CompanyDefaults, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("company_defaults").
		Columns(
			"company_id",
			"start_hour",
			"end_hour",
			"slot_duration_hours",
			"capacity",
		).
		Values(
			d.CompanyID,
			d.StartHour,
			d.EndHour,
			d.SlotDurationHours,
			d.Capacity,
		).
		Suffix(`ON CONFLICT (company_id) DO UPDATE SET
			start_hour = EXCLUDED.start_hour,
			end_hour = EXCLUDED.end_hour,
			slot_duration_hours = EXCLUDED.slot_duration_hours,
			capacity = EXCLUDED.capacity,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}
