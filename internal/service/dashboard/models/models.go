package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	availabilityModels "github.com/m04kA/SMC-BookingPlatform/internal/service/availability/models"
)

// View вариант панели управления
type View string

const (
	// ViewClient панель обычного клиента
	ViewClient View = "client"
	// ViewNoCompany владелец еще не создал компанию
	ViewNoCompany View = "no_company"
	// ViewCompany панель владельца компании с редактором расписания
	ViewCompany View = "company"
)

// Navbar состояние навигационной панели
type Navbar struct {
	FullName   string            `json:"fullName"`
	Language   domain.Language   `json:"language"`
	Currency   domain.Currency   `json:"currency"`
	Languages  []domain.Language `json:"languages"`
	Currencies []domain.Currency `json:"currencies"`
	Dashboard  string            `json:"dashboardLabel"`
	Logout     string            `json:"logoutLabel"`
}

// CompanyInfo краткая информация о компании владельца
type CompanyInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	City        *string   `json:"city,omitempty"`
	IsActive    bool      `json:"isActive"`
	StatusLabel string    `json:"statusLabel"`
}

// DashboardResponse панель управления текущего пользователя
type DashboardResponse struct {
	View     View                             `json:"view"`
	Role     domain.UserRole                  `json:"role"`
	Message  string                           `json:"message,omitempty"`
	Company  *CompanyInfo                     `json:"company,omitempty"`
	Schedule *availabilityModels.WeekResponse `json:"schedule,omitempty"`
	Navbar   Navbar                           `json:"navbar"`
}
