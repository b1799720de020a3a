package check_upcoming_reservations

import (
	uc "github.com/m04kA/SMC-BookingPlatform/internal/usecase/check_upcoming_reservations"
)

// CheckResponse HTTP response model
type CheckResponse struct {
	Success             bool `json:"success"`
	NotificationsSent   int  `json:"notifications_sent"`
	ReservationsChecked int  `json:"reservations_checked"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(resp *uc.Response) *CheckResponse {
	return &CheckResponse{
		Success:             true,
		NotificationsSent:   resp.NotificationsSent,
		ReservationsChecked: resp.ReservationsChecked,
	}
}
