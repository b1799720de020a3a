package profile

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

const tableProfiles = "profiles"

var profileColumns = []string{
	"id",
	"role",
	"full_name",
	"phone",
	"avatar_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с профилями пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль по ID пользователя
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query, args, err := psqlbuilder.Select(profileColumns...).
		From(tableProfiles).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Role,
		&p.FullName,
		&p.Phone,
		&p.AvatarURL,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Create создает профиль для только что зарегистрированного пользователя
// ID профиля совпадает с ID пользователя в сервисе авторизации
func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query, args, err := psqlbuilder.Insert(tableProfiles).
		Columns(
			"id",
			"role",
			"full_name",
			"phone",
		).
		Values(
			profile.ID,
			profile.Role,
			profile.FullName,
			profile.Phone,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	return profile, nil
}
