package domain

// Language is a supported UI language
type Language string

const (
	LanguagePolish  Language = "pl"
	LanguageEnglish Language = "en"
)

// Languages lists supported languages in display order
var Languages = []Language{LanguageEnglish, LanguagePolish}

// IsValid reports whether the language is supported
func (l Language) IsValid() bool {
	return l == LanguagePolish || l == LanguageEnglish
}

// Currency is a supported price currency
type Currency string

const (
	CurrencyPLN Currency = "PLN"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// DefaultCurrency is used when no preference is stored
const DefaultCurrency = CurrencyPLN

// Currencies lists supported currencies in display order
var Currencies = []Currency{CurrencyPLN, CurrencyEUR, CurrencyUSD, CurrencyGBP}

var currencySymbols = map[Currency]string{
	CurrencyPLN: "zł",
	CurrencyEUR: "€",
	CurrencyUSD: "$",
	CurrencyGBP: "£",
}

// IsValid reports whether the currency is supported
func (c Currency) IsValid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol of the currency
func (c Currency) Symbol() string {
	return currencySymbols[c]
}
