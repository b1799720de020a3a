package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/pkg/psqlbuilder"
)

const tableCompanies = "companies"

var companyColumns = []string{
	"id",
	"owner_id",
	"name",
	"slug",
	"description",
	"logo_url",
	"category",
	"location_address",
	"location_city",
	"location_country",
	"email",
	"phone",
	"is_active",
	"subscription_tier",
	"subscription_expires_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с компаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает активные компании, сначала самые новые
// limit ограничивает количество записей (для главной страницы - 6)
func (r *Repository) ListActive(ctx context.Context, limit int) ([]*domain.Company, error) {
	query, args, err := psqlbuilder.Select(companyColumns...).
		From(tableCompanies).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0, limit)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return companies, nil
}

// GetByID получает компанию по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByOwnerID получает компанию владельца
// У владельца может не быть компании - тогда возвращается ErrCompanyNotFound
func (r *Repository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Company, error) {
	return r.getOne(ctx, "GetByOwnerID", squirrel.Eq{"owner_id": ownerID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Company, error) {
	query, args, err := psqlbuilder.Select(companyColumns...).
		From(tableCompanies).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	company, err := scanCompany(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan company: %v", ErrScanRow, op, err)
	}

	return company, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCompany(s scanner) (*domain.Company, error) {
	var c domain.Company
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.LogoURL,
		&c.Category,
		&c.LocationAddress,
		&c.LocationCity,
		&c.LocationCountry,
		&c.Email,
		&c.Phone,
		&c.IsActive,
		&c.SubscriptionTier,
		&c.SubscriptionExpiresAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
