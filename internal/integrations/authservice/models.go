package authservice

// Credentials email и пароль пользователя
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest тело запроса регистрации
// Data сохраняется сервисом авторизации в user_metadata
type SignUpRequest struct {
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Data     map[string]string `json:"data,omitempty"`
}

// User пользователь сервиса авторизации
type User struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	UserMetadata map[string]string `json:"user_metadata"`
}

// Session сессия пользователя, выданная при входе
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// SignUpResponse ответ на регистрацию
// При включенном подтверждении email сессия не выдается, поля токена пустые
type SignUpResponse struct {
	Session
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserID возвращает ID зарегистрированного пользователя независимо от формы ответа
func (r *SignUpResponse) UserID() string {
	if r.User.ID != "" {
		return r.User.ID
	}
	return r.ID
}

// errorResponse тело ошибки сервиса авторизации
// В зависимости от эндпоинта сообщение приходит в одном из трех полей
type errorResponse struct {
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
	Message          string `json:"message"`
}

func (e errorResponse) message() string {
	for _, m := range []string{e.Msg, e.ErrorDescription, e.Error, e.Message} {
		if m != "" {
			return m
		}
	}
	return ""
}
