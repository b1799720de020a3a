package profile

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(id.String(), "company", "Ewa Nowak", "+48111222333", nil, now, now))

	profile, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, domain.RoleCompany, profile.Role)
	assert.True(t, profile.IsCompanyOwner())
	assert.Nil(t, profile.AvatarURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM profiles").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles (id,role,full_name,phone) VALUES ($1,$2,$3,$4) RETURNING created_at, updated_at")).
		WithArgs(id, "client", "Jan Kowalski", "+48500600700").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Profile{
		ID:       id,
		Role:     domain.RoleClient,
		FullName: "Jan Kowalski",
		Phone:    ptr.Ptr("+48500600700"),
	})
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
