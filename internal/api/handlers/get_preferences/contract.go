package get_preferences

import (
	"context"

	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

type PreferencesLoader interface {
	Load(ctx context.Context, clientID, acceptLanguage string) localization.Preferences
}
