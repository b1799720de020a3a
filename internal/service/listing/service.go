package listing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/listing/models"
)

// Service сервис публичного списка компаний
type Service struct {
	companyRepo  CompanyRepository
	serviceRepo  ServiceRepository
	limit        int
	allowPartial bool
	logger       Logger
}

// NewService создает новый экземпляр сервиса списка компаний
// allowPartial включает режим, в котором ошибка загрузки услуг одной компании не прерывает загрузку
func NewService(companyRepo CompanyRepository, serviceRepo ServiceRepository, limit int, allowPartial bool, logger Logger) *Service {
	if limit <= 0 {
		limit = domain.DefaultFeaturedCompaniesLimit
	}

	return &Service{
		companyRepo:  companyRepo,
		serviceRepo:  serviceRepo,
		limit:        limit,
		allowPartial: allowPartial,
		logger:       logger,
	}
}

// ListFeatured загружает новейшие активные компании и их услуги
// Услуги разных компаний загружаются параллельно.
// Без allowPartial любая ошибка прерывает всю загрузку.
func (s *Service) ListFeatured(ctx context.Context) (*models.Featured, error) {
	companies, err := s.companyRepo.ListActive(ctx, s.limit)
	if err != nil {
		s.logger.Error("ListFeatured: failed to list companies: %v", err)
		return nil, fmt.Errorf("%w: ListFeatured - list companies: %v", ErrLoadFailed, err)
	}

	result := &models.Featured{
		Companies: make([]models.CompanyWithServices, len(companies)),
	}
	if len(companies) == 0 {
		s.logger.Info("ListFeatured: no active companies")
		return result, nil
	}

	for i, c := range companies {
		result.Companies[i].Company = c
	}

	if s.allowPartial {
		s.fetchPartial(ctx, result)
	} else if err := s.fetchAll(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info("ListFeatured: loaded %d companies, failed=%d", len(companies), len(result.FailedCompanyIDs))
	return result, nil
}

// fetchAll загружает услуги всех компаний, первая ошибка возвращается вызывающему
func (s *Service) fetchAll(ctx context.Context, result *models.Featured) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(result.Companies))

	for i := range result.Companies {
		item := &result.Companies[i]
		g.Go(func() error {
			services, err := s.serviceRepo.ListActiveByCompany(gctx, item.Company.ID)
			if err != nil {
				return fmt.Errorf("company=%s: %v", item.Company.ID, err)
			}
			item.Services = services
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("ListFeatured: failed to load services: %v", err)
		return fmt.Errorf("%w: ListFeatured - list services: %v", ErrLoadFailed, err)
	}

	return nil
}

// fetchPartial загружает услуги всех компаний, собирая ошибки по каждой компании отдельно
func (s *Service) fetchPartial(ctx context.Context, result *models.Featured) {
	var g errgroup.Group
	failed := make([]bool, len(result.Companies))

	for i := range result.Companies {
		i := i
		item := &result.Companies[i]
		g.Go(func() error {
			services, err := s.serviceRepo.ListActiveByCompany(ctx, item.Company.ID)
			if err != nil {
				s.logger.Warn("ListFeatured: failed to load services for company=%s: %v", item.Company.ID, err)
				failed[i] = true
				return nil
			}
			item.Services = services
			return nil
		})
	}

	_ = g.Wait()

	for i, item := range result.Companies {
		if failed[i] {
			result.FailedCompanyIDs = append(result.FailedCompanyIDs, item.Company.ID)
		}
	}
}
