package localization

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// Ключи хранилища предпочтений
const (
	keyLanguage = "language"
	keyCurrency = "currency"
)

// AnonymousClientID используется, когда клиент не передал идентификатор устройства
const AnonymousClientID = "anonymous"

// Service сервис языковых и валютных предпочтений
type Service struct {
	storage PreferenceStorage
	logger  Logger
}

// NewService создает новый экземпляр сервиса локализации
func NewService(storage PreferenceStorage, logger Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Load читает предпочтения устройства
// Сохраненный язык имеет приоритет, иначе язык определяется по Accept-Language.
// Сохраненная валюта имеет приоритет, иначе PLN.
// Некорректные сохраненные значения и ошибки хранилища игнорируются.
func (s *Service) Load(ctx context.Context, clientID, acceptLanguage string) Preferences {
	clientID = normalizeClientID(clientID)

	prefs := Preferences{
		Language: languageFromLocale(acceptLanguage),
		Currency: domain.DefaultCurrency,
	}

	if stored, ok := s.get(ctx, clientID, keyLanguage); ok {
		if lang := domain.Language(stored); lang.IsValid() {
			prefs.Language = lang
		}
	}

	if stored, ok := s.get(ctx, clientID, keyCurrency); ok {
		if cur := domain.Currency(stored); cur.IsValid() {
			prefs.Currency = cur
		}
	}

	return prefs
}

// SetLanguage сохраняет язык устройства
func (s *Service) SetLanguage(ctx context.Context, clientID string, lang domain.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}

	clientID = normalizeClientID(clientID)
	if err := s.storage.Set(ctx, clientID, keyLanguage, string(lang)); err != nil {
		s.logger.Error("SetLanguage: failed to store language for client=%s: %v", clientID, err)
		return fmt.Errorf("%w: SetLanguage - storage error: %v", ErrInternal, err)
	}

	s.logger.Info("SetLanguage: client=%s language=%s", clientID, lang)
	return nil
}

// SetCurrency сохраняет валюту устройства
func (s *Service) SetCurrency(ctx context.Context, clientID string, cur domain.Currency) error {
	if !cur.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, cur)
	}

	clientID = normalizeClientID(clientID)
	if err := s.storage.Set(ctx, clientID, keyCurrency, string(cur)); err != nil {
		s.logger.Error("SetCurrency: failed to store currency for client=%s: %v", clientID, err)
		return fmt.Errorf("%w: SetCurrency - storage error: %v", ErrInternal, err)
	}

	s.logger.Info("SetCurrency: client=%s currency=%s", clientID, cur)
	return nil
}

func (s *Service) get(ctx context.Context, clientID, key string) (string, bool) {
	value, ok, err := s.storage.Get(ctx, clientID, key)
	if err != nil {
		s.logger.Warn("Load: failed to read %s for client=%s: %v", key, clientID, err)
		return "", false
	}
	return value, ok
}

// languageFromLocale определяет язык по первому тегу Accept-Language
func languageFromLocale(acceptLanguage string) domain.Language {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(acceptLanguage)), "pl") {
		return domain.LanguagePolish
	}
	return domain.LanguageEnglish
}

func normalizeClientID(clientID string) string {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return AnonymousClientID
	}
	return clientID
}
