package check_upcoming_reservations

import (
	"time"

	"github.com/google/uuid"
)

// Notification намерение отправить напоминание по резервации
type Notification struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	SentTo        string    `json:"sent_to"`
}

// Response результат проверки
type Response struct {
	Date                time.Time      `json:"-"`
	Notifications       []Notification `json:"-"`
	NotificationsSent   int            `json:"notifications_sent"`
	ReservationsChecked int            `json:"reservations_checked"`
}
