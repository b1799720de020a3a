package check_upcoming_reservations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

type mockReservationRepo struct {
	mock.Mock
}

func (m *mockReservationRepo) ListConfirmedOn(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type mockSMS struct {
	mock.Mock
}

func (m *mockSMS) Send(to, body string) (string, error) {
	args := m.Called(to, body)
	return args.String(0), args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveReminderRun(checked, sent int, err error) {
	m.Called(checked, sent, err)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type recordingLogger struct {
	infos []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}

func newUseCase(repo ReservationRepository, sms SMSSender, m MetricsRecorder, log Logger, now time.Time) *UseCase {
	uc := NewUseCase(repo, sms, m, log)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestUseCase_Execute_ThreeConfirmed(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 30, 0, 0, time.Local)
	tomorrow := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	reservations := []*domain.Reservation{
		{ID: uuid.New(), ClientEmail: "a@example.com", Status: domain.ReservationConfirmed},
		{ID: uuid.New(), ClientEmail: "b@example.com", Status: domain.ReservationConfirmed},
		{ID: uuid.New(), ClientEmail: "c@example.com", Status: domain.ReservationConfirmed},
	}

	repo := new(mockReservationRepo)
	repo.On("ListConfirmedOn", mock.Anything, tomorrow).Return(reservations, nil)
	m := new(mockMetrics)
	m.On("ObserveReminderRun", 3, 3, nil).Once()
	log := &recordingLogger{}

	resp, err := newUseCase(repo, nil, m, log, now).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.ReservationsChecked)
	assert.Equal(t, 3, resp.NotificationsSent)
	assert.Equal(t, tomorrow, resp.Date)
	require.Len(t, resp.Notifications, 3)
	assert.Equal(t, Notification{ReservationID: reservations[1].ID, SentTo: "b@example.com"}, resp.Notifications[1])

	for _, r := range reservations {
		assert.Contains(t, log.infos, "Sending reminder for reservation "+r.ID.String())
	}
	repo.AssertExpectations(t)
	m.AssertExpectations(t)
}

func TestUseCase_Execute_QueryErrorGivesNoCounts(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("ListConfirmedOn", mock.Anything, mock.Anything).Return(nil, errors.New("permission denied"))
	m := new(mockMetrics)
	m.On("ObserveReminderRun", 0, 0, mock.Anything).Once()

	resp, err := newUseCase(repo, nil, m, &recordingLogger{}, time.Now()).Execute(context.Background())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.Contains(t, err.Error(), "permission denied")
	m.AssertExpectations(t)
}

func TestQueryError_RawMessage(t *testing.T) {
	driverErr := errors.New("pq: connection refused")
	sentinel := errors.New("reservation.repository: failed to execute query")

	cases := map[string]struct {
		cause error
		want  string
	}{
		"plain":          {cause: driverErr, want: "pq: connection refused"},
		"single wrap":    {cause: fmt.Errorf("execute: %w", driverErr), want: "pq: connection refused"},
		"sentinel first": {cause: fmt.Errorf("%w: GetByDateAndStatus - execute query: %w", sentinel, driverErr), want: "pq: connection refused"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := &QueryError{Cause: tc.cause}
			assert.ErrorIs(t, err, ErrQueryFailed)
			assert.ErrorIs(t, err, driverErr)
			assert.Equal(t, tc.want, err.RawMessage())
		})
	}
}

func TestUseCase_Execute_SMSFailureDoesNotChangeCounts(t *testing.T) {
	reservations := []*domain.Reservation{
		{ID: uuid.New(), ClientEmail: "a@example.com", ClientPhone: "+48500100200", StartTime: "10:00"},
		{ID: uuid.New(), ClientEmail: "b@example.com", ClientPhone: ""},
	}

	repo := new(mockReservationRepo)
	repo.On("ListConfirmedOn", mock.Anything, mock.Anything).Return(reservations, nil)
	sms := new(mockSMS)
	sms.On("Send", "+48500100200", mock.AnythingOfType("string")).Return("", errors.New("twilio down")).Once()

	resp, err := newUseCase(repo, sms, nil, &recordingLogger{}, time.Now()).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.NotificationsSent)
	assert.Equal(t, 2, resp.ReservationsChecked)
	sms.AssertExpectations(t)
}

func TestUseCase_Execute_NoReservations(t *testing.T) {
	repo := new(mockReservationRepo)
	repo.On("ListConfirmedOn", mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)

	resp, err := newUseCase(repo, nil, nil, &recordingLogger{}, time.Now()).Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.NotificationsSent)
	assert.Zero(t, resp.ReservationsChecked)
}
