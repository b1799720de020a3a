package check_upcoming_reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	ListConfirmedOn(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// SMSSender отправляет SMS-напоминание клиенту
type SMSSender interface {
	Send(to, body string) (string, error)
}

// MetricsRecorder учитывает результаты запусков
type MetricsRecorder interface {
	ObserveReminderRun(checked, sent int, err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
