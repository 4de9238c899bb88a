package slot

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"gig_id",
	"company_id",
	"date",
	"start_time",
	"end_time",
	"duration_hours",
	"capacity",
	"reserved_count",
	"status",
	"notes",
	"rep_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает пачку слотов одним запросом
// Конфликтующие слоты (тот же gig_id + date + start_time) молча пропускаются
// через ON CONFLICT DO NOTHING - повторная генерация того же окна идемпотентна.
// Возвращает только реально созданные слоты.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error) {
	if len(slots) == 0 {
		return []*domain.TimeSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").
		Columns(
			"gig_id",
			"company_id",
			"date",
			"start_time",
			"end_time",
			"duration_hours",
			"capacity",
			"reserved_count",
			"status",
			"notes",
		)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.GigID,
			s.CompanyID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.DurationHours,
			s.Capacity,
			s.ReservedCount,
			s.Status,
			s.Notes,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (gig_id, date, start_time) DO NOTHING RETURNING " + strings.Join(slotColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByID получает слот по ID
// Внутри транзакции добавляет FOR UPDATE - строка блокируется до конца
// транзакции, чтобы конкурентные бронирования сериализовались
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	slot, err := r.scanSlot(row)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// List получает слоты с фильтрацией
// При filter.WithReservations дополнительно загружает активные брони слотов
func (r *Repository) List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		OrderBy("date ASC, start_time ASC")

	if filter.GigID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"gig_id": *filter.GigID})
	}
	if filter.CompanyID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"company_id": *filter.CompanyID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots, err := r.scanSlots(rows)
	if err != nil {
		return nil, err
	}

	if filter.WithReservations && len(slots) > 0 {
		if err := r.attachReservations(ctx, slots); err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// Reserve атомарно занимает одно место в слоте
// Проверка вместимости и инкремент выполняются одним условным UPDATE,
// поэтому два конкурентных бронирования не могут занять последнее место дважды.
// Статус пересчитывается тем же выражением, что и domain.DeriveStatus.
// Возвращает ErrNoCapacity, если слот заполнен или отменён.
func (r *Repository) Reserve(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("reserved_count", squirrel.Expr("reserved_count + 1")).
		Set("status", squirrel.Expr("CASE WHEN reserved_count + 1 >= capacity THEN 'full' ELSE 'available' END")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.NotEq{"status": domain.SlotStatusCancelled}).
		Where(squirrel.Expr("reserved_count < capacity")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reserve - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNoCapacity
	}

	return nil
}

// Release атомарно освобождает одно место в слоте
// Заполненный слот возвращается в available; отменённый остаётся отменённым
func (r *Repository) Release(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("reserved_count", squirrel.Expr("reserved_count - 1")).
		Set("status", squirrel.Expr("CASE WHEN status = 'full' THEN 'available' ELSE status END")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Expr("reserved_count > 0")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotReserved
	}

	return nil
}

// Delete физически удаляет слот
// Брони каскадно удаляются на уровне схемы; использовать только для
// административной очистки
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// attachReservations загружает активные брони для пачки слотов одним запросом
func (r *Repository) attachReservations(ctx context.Context, slots []*domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slotIDs := make([]int64, len(slots))
	for i, s := range slots {
		slotIDs[i] = s.ID
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_id",
		"agent_id",
		"gig_id",
		"date",
		"start_time",
		"end_time",
		"duration_hours",
		"status",
		"notes",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"slot_id": slotIDs}).
		Where(squirrel.Eq{"status": domain.ReservationStatusReserved}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bySlot := make(map[int64][]*domain.Reservation, len(slots))
	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.SlotID,
			&res.AgentID,
			&res.GigID,
			&res.Date,
			&res.StartTime,
			&res.EndTime,
			&res.DurationHours,
			&res.Status,
			&res.Notes,
			&res.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return fmt.Errorf("%w: attachReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		bySlot[res.SlotID] = append(bySlot[res.SlotID], &res)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachReservations - rows error: %v", ErrScanRow, err)
	}

	for _, s := range slots {
		s.Reservations = bySlot[s.ID]
	}

	return nil
}

// scanSlot сканирует одну строку в слот
func (r *Repository) scanSlot(row *sql.Row) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.GigID,
		&slot.CompanyID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.DurationHours,
		&slot.Capacity,
		&slot.ReservedCount,
		&slot.Status,
		&slot.Notes,
		&slot.RepID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		var slot domain.TimeSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.GigID,
			&slot.CompanyID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.DurationHours,
			&slot.Capacity,
			&slot.ReservedCount,
			&slot.Status,
			&slot.Notes,
			&slot.RepID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
