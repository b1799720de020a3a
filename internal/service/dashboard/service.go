package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	companyRepo "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/company"
	profileRepo "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/profile"
	availabilityModels "github.com/m04kA/SMC-BookingPlatform/internal/service/availability/models"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/dashboard/models"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

// Service сервис панели управления
type Service struct {
	profileRepo    ProfileRepository
	companyRepo    CompanyRepository
	scheduleLoader ScheduleLoader
	logger         Logger
}

// NewService создает новый экземпляр сервиса панели управления
func NewService(profileRepo ProfileRepository, companyRepo CompanyRepository, scheduleLoader ScheduleLoader, logger Logger) *Service {
	return &Service{
		profileRepo:    profileRepo,
		companyRepo:    companyRepo,
		scheduleLoader: scheduleLoader,
		logger:         logger,
	}
}

// Compose собирает панель управления в зависимости от роли пользователя
// Ошибки чтения компании и расписания логируются и не прерывают сборку
func (s *Service) Compose(ctx context.Context, userID uuid.UUID, prefs localization.Preferences) (*models.DashboardResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Compose: profile not found for user=%s", userID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Compose: failed to get profile for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Compose - get profile: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		Role: profile.Role,
		Navbar: models.Navbar{
			FullName:   profile.FullName,
			Language:   prefs.Language,
			Currency:   prefs.Currency,
			Languages:  domain.Languages,
			Currencies: domain.Currencies,
			Dashboard:  prefs.T("nav.dashboard"),
			Logout:     prefs.T("nav.logout"),
		},
	}

	if !profile.IsCompanyOwner() {
		resp.View = models.ViewClient
		resp.Message = prefs.Tf("dashboard.welcome", profile.FullName)
		return resp, nil
	}

	company, err := s.companyRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		if !errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Error("Compose: failed to load company for owner=%s: %v", userID, err)
		}
		resp.View = models.ViewNoCompany
		resp.Message = prefs.T("dashboard.noCompany")
		return resp, nil
	}

	week, err := s.scheduleLoader.LoadWeek(ctx, company.ID)
	if err != nil {
		s.logger.Error("Compose: failed to load schedule for company=%s: %v", company.ID, err)
		week = domain.DefaultWeek()
	}

	statusKey := "dashboard.inactive"
	if company.IsActive {
		statusKey = "dashboard.active"
	}

	resp.View = models.ViewCompany
	resp.Company = &models.CompanyInfo{
		ID:          company.ID,
		Name:        company.Name,
		Category:    company.Category,
		City:        company.LocationCity,
		IsActive:    company.IsActive,
		StatusLabel: prefs.T(statusKey),
	}
	resp.Schedule = availabilityModels.FromDomainWeek(company.ID, week, prefs.DayName)

	return resp, nil
}
