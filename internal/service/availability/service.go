package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	companyRepo "github.com/m04kA/SMC-BookingPlatform/internal/infra/storage/company"
	"github.com/m04kA/SMC-BookingPlatform/pkg/types"
)

// Service сервис редактирования недельного расписания компании
type Service struct {
	companyRepo  CompanyRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(companyRepo CompanyRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		companyRepo:  companyRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Load возвращает расписание компании для ее владельца
// Ошибка чтения расписания не прерывает запрос: владелец видит неделю по умолчанию
func (s *Service) Load(ctx context.Context, companyID, userID uuid.UUID) (domain.Week, error) {
	if err := s.checkOwner(ctx, "Load", companyID, userID); err != nil {
		return domain.Week{}, err
	}

	week, err := s.LoadWeek(ctx, companyID)
	if err != nil {
		s.logger.Warn("Load: falling back to default week for company=%s", companyID)
		return domain.DefaultWeek(), nil
	}

	return week, nil
}

// LoadWeek читает расписание без проверки прав
// Для дней без сохраненной записи используются значения по умолчанию, всегда ровно семь дней
func (s *Service) LoadWeek(ctx context.Context, companyID uuid.UUID) (domain.Week, error) {
	rows, err := s.scheduleRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		s.logger.Error("LoadWeek: repository error for company=%s: %v", companyID, err)
		return domain.Week{}, fmt.Errorf("%w: LoadWeek - repository error: %v", ErrInternal, err)
	}

	return domain.WeekFromSchedules(rows), nil
}

// Save сохраняет все семь дней по порядку, по одному upsert на день
// Первая ошибка прерывает сохранение, уже сохраненные дни не откатываются
func (s *Service) Save(ctx context.Context, companyID, userID uuid.UUID, week domain.Week) error {
	if err := s.checkOwner(ctx, "Save", companyID, userID); err != nil {
		return err
	}
	return s.save(ctx, companyID, week)
}

// Toggle переключает активность дня и сохраняет неделю
func (s *Service) Toggle(ctx context.Context, companyID, userID uuid.UUID, day int) (domain.Week, error) {
	return s.edit(ctx, "Toggle", companyID, userID, func(w *domain.Week) error {
		return w.Toggle(day)
	})
}

// SetTime меняет время начала или окончания дня и сохраняет неделю
func (s *Service) SetTime(ctx context.Context, companyID, userID uuid.UUID, day int, field domain.TimeField, value types.TimeString) (domain.Week, error) {
	if !value.Valid() {
		return domain.Week{}, fmt.Errorf("%w: %v", ErrInvalidInput, types.ErrInvalidTimeString)
	}
	return s.edit(ctx, "SetTime", companyID, userID, func(w *domain.Week) error {
		return w.SetTime(day, field, value)
	})
}

// Exceptions возвращает исключения из расписания компании
func (s *Service) Exceptions(ctx context.Context, companyID, userID uuid.UUID) ([]*domain.ScheduleException, error) {
	if err := s.checkOwner(ctx, "Exceptions", companyID, userID); err != nil {
		return nil, err
	}

	exceptions, err := s.scheduleRepo.GetExceptionsByCompanyID(ctx, companyID)
	if err != nil {
		s.logger.Error("Exceptions: repository error for company=%s: %v", companyID, err)
		return nil, fmt.Errorf("%w: Exceptions - repository error: %v", ErrInternal, err)
	}

	return exceptions, nil
}

func (s *Service) edit(ctx context.Context, op string, companyID, userID uuid.UUID, mutate func(w *domain.Week) error) (domain.Week, error) {
	if err := s.checkOwner(ctx, op, companyID, userID); err != nil {
		return domain.Week{}, err
	}

	week, err := s.LoadWeek(ctx, companyID)
	if err != nil {
		return domain.Week{}, err
	}

	if err := mutate(&week); err != nil {
		s.logger.Warn("%s: invalid edit for company=%s: %v", op, companyID, err)
		return domain.Week{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.save(ctx, companyID, week); err != nil {
		return domain.Week{}, err
	}

	return week, nil
}

func (s *Service) save(ctx context.Context, companyID uuid.UUID, week domain.Week) error {
	for _, row := range week.ToSchedules(companyID) {
		if _, err := s.scheduleRepo.UpsertDay(ctx, row); err != nil {
			s.logger.Error("Save: failed to upsert day=%d for company=%s: %v", row.DayOfWeek, companyID, err)
			return ErrSaveFailed
		}
	}

	s.logger.Info("Save: schedule saved for company=%s", companyID)
	return nil
}

func (s *Service) checkOwner(ctx context.Context, op string, companyID, userID uuid.UUID) error {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("%s: company id=%s not found", op, companyID)
			return ErrCompanyNotFound
		}
		s.logger.Error("%s: failed to get company id=%s: %v", op, companyID, err)
		return fmt.Errorf("%w: %s - get company: %v", ErrInternal, op, err)
	}

	if !company.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%s is not the owner of company=%s", op, userID, companyID)
		return ErrAccessDenied
	}

	return nil
}
