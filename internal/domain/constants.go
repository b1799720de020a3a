package domain

// Listing constants
const (
	DefaultFeaturedCompaniesLimit = 6
	ServicesPerCard               = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
