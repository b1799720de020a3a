package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/pkg/psqlbuilder"
)

const (
	tableSchedules          = "schedules"
	tableScheduleExceptions = "schedule_exceptions"
)

var scheduleColumns = []string{
	"id",
	"company_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_active",
	"created_at",
}

var exceptionColumns = []string{
	"id",
	"company_id",
	"date",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// upsertSuffix обновляет существующую запись дня вместо создания дубликата
// Требует уникальный индекс (company_id, day_of_week)
const upsertSuffix = "ON CONFLICT (company_id, day_of_week) DO UPDATE SET " +
	"start_time = EXCLUDED.start_time, " +
	"end_time = EXCLUDED.end_time, " +
	"is_active = EXCLUDED.is_active " +
	"RETURNING id, created_at"

// Repository репозиторий для работы с расписанием компаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCompanyID получает сохраненные дни расписания компании
// Дней может быть меньше семи - недостающие заполняются значениями по умолчанию на уровне сервиса
func (r *Repository) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*domain.Schedule, error) {
	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From(tableSchedules).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0, domain.DaysInWeek)
	for rows.Next() {
		var s domain.Schedule
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.CompanyID,
			&s.DayOfWeek,
			&s.StartTime,
			&s.EndTime,
			&s.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCompanyID - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyID - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// UpsertDay сохраняет расписание одного дня
// Если запись для (company_id, day_of_week) уже есть - обновляет время и флаг активности
func (r *Repository) UpsertDay(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	query, args, err := psqlbuilder.Insert(tableSchedules).
		Columns(
			"company_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_active",
		).
		Values(
			schedule.CompanyID,
			schedule.DayOfWeek,
			schedule.StartTime,
			schedule.EndTime,
			schedule.IsActive,
		).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDay - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertDay - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time

	return schedule, nil
}

// GetExceptionsByCompanyID получает исключения из расписания компании по возрастанию даты
func (r *Repository) GetExceptionsByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*domain.ScheduleException, error) {
	query, args, err := psqlbuilder.Select(exceptionColumns...).
		From(tableScheduleExceptions).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByCompanyID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByCompanyID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]*domain.ScheduleException, 0)
	for rows.Next() {
		var e domain.ScheduleException
		var createdAt sql.NullTime

		err := rows.Scan(
			&e.ID,
			&e.CompanyID,
			&e.Date,
			&e.StartTime,
			&e.EndTime,
			&e.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetExceptionsByCompanyID - scan row: %v", ErrScanRow, err)
		}

		e.CreatedAt = createdAt.Time
		exceptions = append(exceptions, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByCompanyID - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}
