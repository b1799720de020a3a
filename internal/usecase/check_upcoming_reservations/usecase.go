package check_upcoming_reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// UseCase use case проверки завтрашних подтвержденных резерваций
type UseCase struct {
	reservationRepo ReservationRepository
	sms             SMSSender
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// sms может быть nil - тогда SMS не отправляются
func NewUseCase(
	reservationRepo ReservationRepository,
	sms SMSSender,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		sms:             sms,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute находит подтвержденные резервации на завтра (по локальному времени сервера)
// и фиксирует намерение напомнить о каждой.
// Ошибка запроса прерывает проверку целиком, частичных результатов нет.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	tomorrow := uc.timeProvider.Now().AddDate(0, 0, 1)
	date := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())

	uc.logger.Info("CheckUpcomingReservations: checking confirmed reservations for %s", date.Format(domain.DateFormat))

	reservations, err := uc.reservationRepo.ListConfirmedOn(ctx, date)
	if err != nil {
		uc.logger.Error("CheckUpcomingReservations: query failed: %v", err)
		uc.observe(0, 0, err)
		return nil, &QueryError{Cause: err}
	}

	notifications := make([]Notification, 0, len(reservations))
	for _, r := range reservations {
		uc.logger.Info("Sending reminder for reservation %s", r.ID)
		notifications = append(notifications, Notification{
			ReservationID: r.ID,
			SentTo:        r.ClientEmail,
		})
		uc.sendSMS(r)
	}

	resp := &Response{
		Date:                date,
		Notifications:       notifications,
		NotificationsSent:   len(notifications),
		ReservationsChecked: len(reservations),
	}

	uc.observe(resp.ReservationsChecked, resp.NotificationsSent, nil)
	uc.logger.Info("CheckUpcomingReservations: checked=%d, sent=%d", resp.ReservationsChecked, resp.NotificationsSent)

	return resp, nil
}

// sendSMS отправляет SMS, если отправка включена и у клиента есть телефон
// Результат отправки не влияет на счетчики
func (uc *UseCase) sendSMS(r *domain.Reservation) {
	if uc.sms == nil || r.ClientPhone == "" {
		return
	}

	body := fmt.Sprintf("Reminder: your reservation on %s at %s",
		r.ReservationDate.Format(domain.DateFormat), r.StartTime)

	if _, err := uc.sms.Send(r.ClientPhone, body); err != nil {
		uc.logger.Warn("CheckUpcomingReservations: SMS for reservation %s failed: %v", r.ID, err)
	}
}

func (uc *UseCase) observe(checked, sent int, err error) {
	if uc.metrics != nil {
		uc.metrics.ObserveReminderRun(checked, sent, err)
	}
}
