package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeek(t *testing.T) {
	w := DefaultWeek()

	for day := 0; day < DaysInWeek; day++ {
		assert.Equal(t, day, w[day].DayOfWeek)
		assert.Equal(t, DefaultStartTime, w[day].StartTime)
		assert.Equal(t, DefaultEndTime, w[day].EndTime)
	}

	assert.False(t, w[0].IsActive, "sunday")
	assert.True(t, w[1].IsActive, "monday")
	assert.True(t, w[5].IsActive, "friday")
	assert.False(t, w[6].IsActive, "saturday")
}

func TestWeekFromSchedules_OverlaysStoredRows(t *testing.T) {
	rows := []*Schedule{
		{DayOfWeek: 6, IsActive: true, StartTime: "10:00", EndTime: "14:00"},
		{DayOfWeek: 9, IsActive: true, StartTime: "10:00", EndTime: "14:00"},
		nil,
	}

	w := WeekFromSchedules(rows)

	assert.Equal(t, DaySchedule{DayOfWeek: 6, IsActive: true, StartTime: "10:00", EndTime: "14:00"}, w[6])
	assert.Equal(t, DefaultWeek()[1], w[1])
}

func TestWeek_ToggleKeepsHours(t *testing.T) {
	w := DefaultWeek()
	require.NoError(t, w.SetTime(2, FieldStartTime, "08:00"))

	require.NoError(t, w.Toggle(2))
	assert.False(t, w[2].IsActive)
	assert.Equal(t, "08:00", w[2].StartTime.String())
	assert.Equal(t, DefaultEndTime, w[2].EndTime)

	require.NoError(t, w.Toggle(2))
	assert.True(t, w[2].IsActive)

	assert.ErrorIs(t, w.Toggle(7), ErrInvalidDayOfWeek)
}

func TestWeek_SetTime(t *testing.T) {
	w := DefaultWeek()

	require.NoError(t, w.SetTime(0, FieldEndTime, "20:00"))
	assert.Equal(t, "20:00", w[0].EndTime.String())

	// end before start is accepted as is
	require.NoError(t, w.SetTime(0, FieldStartTime, "21:00"))
	assert.Equal(t, "21:00", w[0].StartTime.String())

	assert.ErrorIs(t, w.SetTime(0, "duration", "01:00"), ErrInvalidTimeField)
	assert.ErrorIs(t, w.SetTime(-1, FieldEndTime, "20:00"), ErrInvalidDayOfWeek)
}

func TestWeek_ToSchedules(t *testing.T) {
	companyID := uuid.New()
	w := DefaultWeek()

	rows := w.ToSchedules(companyID)

	require.Len(t, rows, DaysInWeek)
	for i, row := range rows {
		assert.Equal(t, companyID, row.CompanyID)
		assert.Equal(t, i, row.DayOfWeek)
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "zł", CurrencyPLN.Symbol())
	assert.Equal(t, "$", CurrencyUSD.Symbol())
	assert.False(t, Currency("JPY").IsValid())
	assert.True(t, LanguagePolish.IsValid())
	assert.False(t, Language("de").IsValid())
}

func TestCompanyInitial(t *testing.T) {
	c := &Company{Name: "Łódź Barber"}
	assert.Equal(t, "Ł", c.Initial())
	assert.Equal(t, "", (&Company{}).Initial())
}
