package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/pkg/types"
)

// Request модели

// DayRequest расписание одного дня в запросе сохранения
type DayRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	IsActive  bool   `json:"isActive"`
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// SaveWeekRequest запрос на сохранение недели
// Должен содержать ровно семь дней, каждый день недели ровно один раз
type SaveWeekRequest struct {
	Days []DayRequest `json:"days"`
}

// SetTimeRequest запрос на изменение времени одного дня
type SetTimeRequest struct {
	Field string `json:"field"` // start_time | end_time
	Value string `json:"value"` // HH:MM
}

// ToDomainWeek проверяет запрос и собирает неделю
// Порядок начала и окончания не проверяется
func (r *SaveWeekRequest) ToDomainWeek() (domain.Week, error) {
	var week domain.Week

	if len(r.Days) != domain.DaysInWeek {
		return week, fmt.Errorf("expected %d days, got %d", domain.DaysInWeek, len(r.Days))
	}

	var seen [domain.DaysInWeek]bool
	for _, d := range r.Days {
		if d.DayOfWeek < 0 || d.DayOfWeek >= domain.DaysInWeek {
			return week, fmt.Errorf("%w: %d", domain.ErrInvalidDayOfWeek, d.DayOfWeek)
		}
		if seen[d.DayOfWeek] {
			return week, fmt.Errorf("duplicate day of week %d", d.DayOfWeek)
		}
		seen[d.DayOfWeek] = true

		start, err := types.ParseTimeString(d.StartTime)
		if err != nil {
			return week, err
		}
		end, err := types.ParseTimeString(d.EndTime)
		if err != nil {
			return week, err
		}

		week[d.DayOfWeek] = domain.DaySchedule{
			DayOfWeek: d.DayOfWeek,
			IsActive:  d.IsActive,
			StartTime: start,
			EndTime:   end,
		}
	}

	return week, nil
}

// Response модели

// DayResponse расписание одного дня
type DayResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	DayName   string `json:"dayName"`
	IsActive  bool   `json:"isActive"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// WeekResponse недельное расписание компании
type WeekResponse struct {
	CompanyID uuid.UUID     `json:"companyId"`
	Days      []DayResponse `json:"days"`
}

// SaveResponse результат сохранения расписания
type SaveResponse struct {
	Message string        `json:"message"`
	Week    *WeekResponse `json:"week,omitempty"`
}

// ExceptionResponse исключение из расписания на конкретную дату
type ExceptionResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	ClosedAll bool      `json:"closedAllDay"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExceptionListResponse список исключений из расписания
type ExceptionListResponse struct {
	Exceptions []ExceptionResponse `json:"exceptions"`
}

// Методы конвертации

// FromDomainWeek конвертирует неделю в DTO
// dayName возвращает локализованное название дня
func FromDomainWeek(companyID uuid.UUID, week domain.Week, dayName func(day int) string) *WeekResponse {
	days := make([]DayResponse, 0, domain.DaysInWeek)
	for _, d := range week {
		days = append(days, DayResponse{
			DayOfWeek: d.DayOfWeek,
			DayName:   dayName(d.DayOfWeek),
			IsActive:  d.IsActive,
			StartTime: d.StartTime.String(),
			EndTime:   d.EndTime.String(),
		})
	}

	return &WeekResponse{
		CompanyID: companyID,
		Days:      days,
	}
}

// FromDomainExceptions конвертирует исключения в DTO
func FromDomainExceptions(exceptions []*domain.ScheduleException) *ExceptionListResponse {
	resp := &ExceptionListResponse{Exceptions: make([]ExceptionResponse, 0, len(exceptions))}
	for _, e := range exceptions {
		resp.Exceptions = append(resp.Exceptions, ExceptionResponse{
			ID:        e.ID,
			Date:      e.Date.Format(domain.DateFormat),
			StartTime: timeStringPtr(e.StartTime),
			EndTime:   timeStringPtr(e.EndTime),
			Reason:    e.Reason,
			ClosedAll: e.IsClosedAllDay(),
			CreatedAt: e.CreatedAt,
		})
	}
	return resp
}

func timeStringPtr(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
