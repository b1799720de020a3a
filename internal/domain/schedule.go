package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/pkg/types"
)

// DaysInWeek is the number of day-records a weekly schedule always has
const DaysInWeek = 7

// Default opening hours used for days without a stored schedule row
const (
	DefaultStartTime types.TimeString = "09:00"
	DefaultEndTime   types.TimeString = "17:00"
)

// TimeField names an editable time field of a day schedule
type TimeField string

const (
	FieldStartTime TimeField = "start_time"
	FieldEndTime   TimeField = "end_time"
)

var (
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")
	ErrInvalidTimeField = errors.New("time field must be start_time or end_time")
)

// Schedule is a stored per-day opening window of a company.
// DayOfWeek follows time.Weekday: 0 = Sunday ... 6 = Saturday.
type Schedule struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
	CreatedAt time.Time
}

// DaySchedule is the editable state of one day of the week
type DaySchedule struct {
	DayOfWeek int
	IsActive  bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Week holds exactly seven day schedules indexed by day of week
type Week [DaysInWeek]DaySchedule

// DefaultWeek returns Mon-Fri open 09:00-17:00 and Sat/Sun closed with the same hours
func DefaultWeek() Week {
	var w Week
	for day := 0; day < DaysInWeek; day++ {
		w[day] = DaySchedule{
			DayOfWeek: day,
			IsActive:  day != int(time.Sunday) && day != int(time.Saturday),
			StartTime: DefaultStartTime,
			EndTime:   DefaultEndTime,
		}
	}
	return w
}

// WeekFromSchedules overlays stored rows on the default week.
// Rows with an out-of-range day are ignored.
func WeekFromSchedules(rows []*Schedule) Week {
	w := DefaultWeek()
	for _, row := range rows {
		if row == nil || !validDay(row.DayOfWeek) {
			continue
		}
		w[row.DayOfWeek] = DaySchedule{
			DayOfWeek: row.DayOfWeek,
			IsActive:  row.IsActive,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		}
	}
	return w
}

// Toggle flips the active flag of one day, leaving its hours untouched
func (w *Week) Toggle(day int) error {
	if !validDay(day) {
		return fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, day)
	}
	w[day].IsActive = !w[day].IsActive
	return nil
}

// SetTime sets the start or end time of one day.
// Start/end ordering is not checked.
func (w *Week) SetTime(day int, field TimeField, value types.TimeString) error {
	if !validDay(day) {
		return fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, day)
	}
	switch field {
	case FieldStartTime:
		w[day].StartTime = value
	case FieldEndTime:
		w[day].EndTime = value
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTimeField, field)
	}
	return nil
}

// ToSchedules converts the week into rows for the given company, one per day
func (w *Week) ToSchedules(companyID uuid.UUID) []*Schedule {
	rows := make([]*Schedule, 0, DaysInWeek)
	for _, d := range w {
		rows = append(rows, &Schedule{
			CompanyID: companyID,
			DayOfWeek: d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			IsActive:  d.IsActive,
		})
	}
	return rows
}

func validDay(day int) bool {
	return day >= 0 && day < DaysInWeek
}

// ScheduleException is a date-specific override of a company's weekly schedule
type ScheduleException struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Date      time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
	CreatedAt time.Time
}

// IsClosedAllDay returns true if the exception has no opening window
func (e *ScheduleException) IsClosedAllDay() bool {
	return e.StartTime == nil && e.EndTime == nil
}
