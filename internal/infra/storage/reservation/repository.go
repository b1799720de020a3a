package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"company_id",
	"service_id",
	"client_id",
	"client_name",
	"client_email",
	"client_phone",
	"reservation_date",
	"start_time",
	"end_time",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDateAndStatus получает резервации на указанную дату с указанным статусом
// Учитывается только календарная дата, время суток отбрасывается
func (r *Repository) GetByDateAndStatus(ctx context.Context, date time.Time, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"reservation_date": date.Format(domain.DateFormat),
			"status":           status,
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndStatus - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.CompanyID,
			&res.ServiceID,
			&res.ClientID,
			&res.ClientName,
			&res.ClientEmail,
			&res.ClientPhone,
			&res.ReservationDate,
			&res.StartTime,
			&res.EndTime,
			&res.Status,
			&res.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDateAndStatus - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndStatus - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

// ListConfirmedOn получает подтвержденные резервации на указанную дату
func (r *Repository) ListConfirmedOn(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return r.GetByDateAndStatus(ctx, date, domain.ReservationConfirmed)
}
