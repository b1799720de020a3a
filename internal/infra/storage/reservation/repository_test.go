package reservation

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
)

func TestRepository_GetByDateAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2025, 3, 15, 22, 45, 0, 0, time.Local)
	clientID := uuid.New()

	rows := sqlmock.NewRows(reservationColumns).
		AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), clientID.String(), "Anna", "anna@example.com", "+48500100200",
			date, "10:00:00", "10:30:00", "confirmed", nil, date, date).
		AddRow(uuid.NewString(), uuid.NewString(), uuid.NewString(), nil, "Jan", "jan@example.com", "+48500100300",
			date, "11:00:00", "12:00:00", "confirmed", "window seat", date, date)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE reservation_date = $1 AND status = $2 ORDER BY start_time ASC")).
		WithArgs("2025-03-15", "confirmed").
		WillReturnRows(rows)

	reservations, err := repo.GetByDateAndStatus(context.Background(), date, domain.ReservationConfirmed)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	require.NotNil(t, reservations[0].ClientID)
	assert.Equal(t, clientID, *reservations[0].ClientID)
	assert.Equal(t, "10:00", reservations[0].StartTime.String())
	assert.True(t, reservations[0].IsConfirmed())

	assert.Nil(t, reservations[1].ClientID)
	require.NotNil(t, reservations[1].Notes)
	assert.Equal(t, "window seat", *reservations[1].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDateAndStatus_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM reservations").WillReturnRows(sqlmock.NewRows(reservationColumns))

	reservations, err := NewRepository(db).GetByDateAndStatus(context.Background(), time.Now(), domain.ReservationConfirmed)
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestRepository_GetByDateAndStatus_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	driverErr := errors.New("relation does not exist")
	mock.ExpectQuery("FROM reservations").WillReturnError(driverErr)

	_, err = NewRepository(db).GetByDateAndStatus(context.Background(), time.Now(), domain.ReservationConfirmed)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, driverErr)
}
