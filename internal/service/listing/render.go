package listing

import (
	"fmt"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/listing/models"
)

// Localizer переводы и форматирование цен для текущего клиента
type Localizer interface {
	T(key string) string
	FormatPrice(price float64, currency domain.Currency) string
}

// Render собирает страницу с карточками компаний
// На карточке показываются первые три услуги и количество оставшихся
func Render(featured *models.Featured, loc Localizer) *models.FeaturedPage {
	page := &models.FeaturedPage{
		Title:     loc.T("home.title"),
		Subtitle:  loc.T("home.subtitle"),
		Companies: make([]models.CompanyCard, 0, len(featured.Companies)),
	}

	for _, item := range featured.Companies {
		page.Companies = append(page.Companies, renderCard(item, loc))
	}

	if len(page.Companies) == 0 {
		page.EmptyMessage = loc.T("home.empty")
	}

	if featured.Partial() {
		page.Partial = true
		page.FailedCompanyIDs = featured.FailedCompanyIDs
	}

	return page
}

func renderCard(item models.CompanyWithServices, loc Localizer) models.CompanyCard {
	c := item.Company
	card := models.CompanyCard{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		City:        c.LocationCity,
		Category:    c.Category,
		LogoURL:     c.LogoURL,
		Initial:     c.Initial(),
		Services:    make([]models.ServiceCard, 0, domain.ServicesPerCard),
	}

	shown := item.Services
	if len(shown) > domain.ServicesPerCard {
		shown = shown[:domain.ServicesPerCard]
	}

	for _, svc := range shown {
		card.Services = append(card.Services, models.ServiceCard{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			PriceLabel:      loc.T("home.priceFrom") + " " + loc.FormatPrice(svc.Price, svc.Currency),
		})
	}

	card.MoreServices = len(item.Services) - len(shown)
	if card.MoreServices > 0 {
		card.MoreLabel = fmt.Sprintf("+%d %s", card.MoreServices, loc.T("home.moreServices"))
	}

	return card
}
