package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// CompanyWithServices компания вместе с ее активными услугами (по возрастанию цены)
type CompanyWithServices struct {
	Company  *domain.Company
	Services []*domain.Service
}

// Featured результат загрузки главной страницы
// FailedCompanyIDs заполняется только в режиме частичной загрузки
type Featured struct {
	Companies        []CompanyWithServices
	FailedCompanyIDs []uuid.UUID
}

// Partial сообщает, что услуги части компаний не удалось загрузить
func (f *Featured) Partial() bool {
	return len(f.FailedCompanyIDs) > 0
}

// ServiceCard услуга на карточке компании
type ServiceCard struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceLabel      string    `json:"priceLabel"` // "from 19.50 zł"
}

// CompanyCard карточка компании на главной странице
type CompanyCard struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  *string       `json:"description,omitempty"`
	City         *string       `json:"city,omitempty"`
	Category     string        `json:"category"`
	LogoURL      *string       `json:"logoUrl,omitempty"`
	Initial      string        `json:"initial"`
	Services     []ServiceCard `json:"services"`
	MoreServices int           `json:"moreServices"`
	MoreLabel    string        `json:"moreLabel,omitempty"` // "+2 more services"
}

// FeaturedPage ответ главной страницы
type FeaturedPage struct {
	Title            string        `json:"title"`
	Subtitle         string        `json:"subtitle"`
	Companies        []CompanyCard `json:"companies"`
	EmptyMessage     string        `json:"emptyMessage,omitempty"`
	Partial          bool          `json:"partial"`
	FailedCompanyIDs []uuid.UUID   `json:"failedCompanyIds,omitempty"`
}
