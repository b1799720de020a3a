package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"company_id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"currency",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с услугами компаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByCompany получает активные услуги компании, от самой дешевой к самой дорогой
func (r *Repository) ListActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"company_id": companyID, "is_active": true}).
		OrderBy("price ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.CompanyID,
			&s.Name,
			&s.Description,
			&s.DurationMinutes,
			&s.Price,
			&s.Currency,
			&s.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByCompany - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByCompany - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
