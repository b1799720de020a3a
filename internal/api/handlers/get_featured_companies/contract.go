package get_featured_companies

import (
	"context"

	"github.com/m04kA/SMC-BookingPlatform/internal/service/listing/models"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

type ListingService interface {
	ListFeatured(ctx context.Context) (*models.Featured, error)
}

type PreferencesLoader interface {
	Load(ctx context.Context, clientID, acceptLanguage string) localization.Preferences
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
