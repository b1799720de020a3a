package localization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

func TestPreferences_FormatPrice(t *testing.T) {
	prefs := Preferences{Language: domain.LanguageEnglish, Currency: domain.CurrencyPLN}

	assert.Equal(t, "19.50 $", prefs.FormatPrice(19.5, domain.CurrencyUSD))
	assert.Equal(t, "19.50 zł", prefs.FormatPrice(19.5, ""))
	assert.Equal(t, "100.00 €", prefs.FormatPrice(100, domain.CurrencyEUR))
	assert.Equal(t, "0.99 £", prefs.FormatPrice(0.99, domain.CurrencyGBP))
}

func TestPreferences_T(t *testing.T) {
	en := Preferences{Language: domain.LanguageEnglish}
	pl := Preferences{Language: domain.LanguagePolish}

	assert.Equal(t, "Save schedule", en.T("schedule.save"))
	assert.Equal(t, "Zapisz grafik", pl.T("schedule.save"))
	assert.Equal(t, "missing.key", pl.T("missing.key"))
	assert.Equal(t, "Witaj, Anna!", pl.Tf("dashboard.welcome", "Anna"))
}

func TestPreferences_DayName(t *testing.T) {
	pl := Preferences{Language: domain.LanguagePolish}

	assert.Equal(t, "Niedziela", pl.DayName(0))
	assert.Equal(t, "Sobota", pl.DayName(6))
	assert.Empty(t, pl.DayName(7))
}

func TestTranslations_SameKeysInEveryLanguage(t *testing.T) {
	en := translations[domain.LanguageEnglish]
	for _, lang := range domain.Languages {
		table := translations[lang]
		assert.Len(t, table, len(en), "language %s", lang)
		for key := range en {
			_, ok := table[key]
			assert.True(t, ok, "language %s misses %s", lang, key)
		}
	}
}
