package schedule

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/pkg/types"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetByCompanyID_TruncatesTime(t *testing.T) {
	repo, mock := newMock(t)
	companyID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(scheduleColumns).
		AddRow(uuid.NewString(), companyID.String(), 1, "08:30:00", "16:00:00", true, now).
		AddRow(uuid.NewString(), companyID.String(), 6, []byte("10:00:00"), []byte("14:00:00"), false, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM schedules WHERE company_id = $1 ORDER BY day_of_week ASC")).
		WithArgs(companyID).
		WillReturnRows(rows)

	schedules, err := repo.GetByCompanyID(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	assert.Equal(t, 1, schedules[0].DayOfWeek)
	assert.Equal(t, types.TimeString("08:30"), schedules[0].StartTime)
	assert.Equal(t, types.TimeString("16:00"), schedules[0].EndTime)
	assert.Equal(t, types.TimeString("10:00"), schedules[1].StartTime)
	assert.False(t, schedules[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCompanyID_QueryError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM schedules").WillReturnError(errors.New("timeout"))

	_, err := repo.GetByCompanyID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_UpsertDay(t *testing.T) {
	repo, mock := newMock(t)
	companyID := uuid.New()
	id := uuid.New()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO schedules (company_id,day_of_week,start_time,end_time,is_active) VALUES ($1,$2,$3,$4,$5) "+
			"ON CONFLICT (company_id, day_of_week) DO UPDATE SET")).
		WithArgs(companyID, 3, "09:00", "17:00", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), createdAt))

	saved, err := repo.UpsertDay(context.Background(), &domain.Schedule{
		CompanyID: companyID,
		DayOfWeek: 3,
		StartTime: "09:00",
		EndTime:   "17:00",
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertDay_Error(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO schedules").WillReturnError(errors.New("unique violation"))

	_, err := repo.UpsertDay(context.Background(), &domain.Schedule{CompanyID: uuid.New(), DayOfWeek: 0})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetExceptionsByCompanyID(t *testing.T) {
	repo, mock := newMock(t)
	companyID := uuid.New()
	date := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(exceptionColumns).
		AddRow(uuid.NewString(), companyID.String(), date, nil, nil, "Christmas Eve", date).
		AddRow(uuid.NewString(), companyID.String(), date.AddDate(0, 0, 7), "10:00:00", "12:00:00", nil, date)

	mock.ExpectQuery(regexp.QuoteMeta("FROM schedule_exceptions WHERE company_id = $1 ORDER BY date ASC")).
		WithArgs(companyID).
		WillReturnRows(rows)

	exceptions, err := repo.GetExceptionsByCompanyID(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, exceptions, 2)

	assert.True(t, exceptions[0].IsClosedAllDay())
	require.NotNil(t, exceptions[0].Reason)
	assert.Equal(t, "Christmas Eve", *exceptions[0].Reason)

	assert.False(t, exceptions[1].IsClosedAllDay())
	require.NotNil(t, exceptions[1].StartTime)
	assert.Equal(t, types.TimeString("10:00"), *exceptions[1].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}
