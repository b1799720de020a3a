package localization

import "github.com/m04kA/SMC-BookingPlatform/internal/domain"

var translations = map[domain.Language]map[string]string{
	domain.LanguageEnglish: {
		"nav.home":                  "Home",
		"nav.login":                 "Login",
		"nav.register":              "Register",
		"nav.dashboard":             "Dashboard",
		"nav.logout":                "Logout",
		"login.title":               "Login to your account",
		"login.email":               "Email",
		"login.password":            "Password",
		"login.showPassword":        "Show password",
		"login.hidePassword":        "Hide password",
		"login.submit":              "Sign in",
		"login.forgotPassword":      "Forgot password?",
		"login.noAccount":           "Don't have an account?",
		"login.signUp":              "Sign up",
		"register.title":            "Create an account",
		"register.fullName":         "Full name",
		"register.phone":            "Phone number",
		"register.role":             "I am a",
		"register.roleClient":       "Client",
		"register.roleCompany":      "Business owner",
		"register.submit":           "Create account",
		"register.hasAccount":       "Already have an account?",
		"register.signIn":           "Sign in",
		"resetPassword.title":       "Reset password",
		"resetPassword.email":       "Email",
		"resetPassword.submit":      "Send reset link",
		"resetPassword.backToLogin": "Back to login",
		"resetPassword.success":     "Password reset link sent to your email",
		"home.title":                "Book services easily",
		"home.subtitle":             "Find and book appointments with local businesses",
		"home.priceFrom":            "from",
		"home.services":             "Services",
		"home.moreServices":         "more services",
		"home.empty":                "No businesses found. Check back soon!",
		"schedule.monday":           "Monday",
		"schedule.tuesday":          "Tuesday",
		"schedule.wednesday":        "Wednesday",
		"schedule.thursday":         "Thursday",
		"schedule.friday":           "Friday",
		"schedule.saturday":         "Saturday",
		"schedule.sunday":           "Sunday",
		"schedule.save":             "Save schedule",
		"schedule.saved":            "Schedule saved successfully",
		"schedule.closed":           "Closed",
		"schedule.open":             "Open",
		"schedule.from":             "From",
		"schedule.to":               "To",
		"dashboard.welcome":         "Welcome, %s!",
		"dashboard.noCompany":       "You have not created a company yet",
		"dashboard.active":          "Active",
		"dashboard.inactive":        "Inactive",
		"common.loading":            "Loading...",
		"common.error":              "An error occurred",
		"common.success":            "Success",
		"common.currency":           "Currency",
	},
	domain.LanguagePolish: {
		"nav.home":                  "Strona główna",
		"nav.login":                 "Zaloguj się",
		"nav.register":              "Zarejestruj się",
		"nav.dashboard":             "Panel",
		"nav.logout":                "Wyloguj się",
		"login.title":               "Zaloguj się do konta",
		"login.email":               "Email",
		"login.password":            "Hasło",
		"login.showPassword":        "Pokaż hasło",
		"login.hidePassword":        "Ukryj hasło",
		"login.submit":              "Zaloguj się",
		"login.forgotPassword":      "Zapomniałeś hasła?",
		"login.noAccount":           "Nie masz konta?",
		"login.signUp":              "Zarejestruj się",
		"register.title":            "Utwórz konto",
		"register.fullName":         "Imię i nazwisko",
		"register.phone":            "Numer telefonu",
		"register.role":             "Jestem",
		"register.roleClient":       "Klientem",
		"register.roleCompany":      "Właścicielem firmy",
		"register.submit":           "Utwórz konto",
		"register.hasAccount":       "Masz już konto?",
		"register.signIn":           "Zaloguj się",
		"resetPassword.title":       "Resetuj hasło",
		"resetPassword.email":       "Email",
		"resetPassword.submit":      "Wyślij link resetujący",
		"resetPassword.backToLogin": "Powrót do logowania",
		"resetPassword.success":     "Link resetujący hasło został wysłany na email",
		"home.title":                "Rezerwuj usługi łatwo",
		"home.subtitle":             "Znajdź i zarezerwuj wizyty w lokalnych firmach",
		"home.priceFrom":            "od",
		"home.services":             "Usługi",
		"home.moreServices":         "więcej usług",
		"home.empty":                "Nie znaleziono firm. Zajrzyj wkrótce!",
		"schedule.monday":           "Poniedziałek",
		"schedule.tuesday":          "Wtorek",
		"schedule.wednesday":        "Środa",
		"schedule.thursday":         "Czwartek",
		"schedule.friday":           "Piątek",
		"schedule.saturday":         "Sobota",
		"schedule.sunday":           "Niedziela",
		"schedule.save":             "Zapisz grafik",
		"schedule.saved":            "Grafik zapisany pomyślnie",
		"schedule.closed":           "Zamknięte",
		"schedule.open":             "Otwarte",
		"schedule.from":             "Od",
		"schedule.to":               "Do",
		"dashboard.welcome":         "Witaj, %s!",
		"dashboard.noCompany":       "Nie utworzyłeś jeszcze firmy",
		"dashboard.active":          "Aktywna",
		"dashboard.inactive":        "Nieaktywna",
		"common.loading":            "Ładowanie...",
		"common.error":              "Wystąpił błąd",
		"common.success":            "Sukces",
		"common.currency":           "Waluta",
	},
}

// dayNameKeys ключи названий дней недели, индекс совпадает с day_of_week
var dayNameKeys = [domain.DaysInWeek]string{
	"schedule.sunday",
	"schedule.monday",
	"schedule.tuesday",
	"schedule.wednesday",
	"schedule.thursday",
	"schedule.friday",
	"schedule.saturday",
}
