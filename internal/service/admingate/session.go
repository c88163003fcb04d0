package admingate

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/securecookie"
)

const cookieName = "lift_admin_session"

// State состояние сессии администратора
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// sessionValue содержимое cookie
type sessionValue struct {
	Admin      bool
	Generation int64
}

// Sessions хранит признак авторизации в подписанной и зашифрованной cookie
// Cookie живёт до закрытия браузера или явного выхода, срока действия у значения нет.
// Выход увеличивает поколение, и все ранее выданные cookie перестают действовать.
type Sessions struct {
	gate       *Gate
	sc         *securecookie.SecureCookie
	secure     bool
	generation atomic.Int64
	logger     Logger
}

// NewSessions создает менеджер сессий
// hashKey: 32 или 64 байта, blockKey: 16, 24 или 32 байта (или nil, чтобы не шифровать)
func NewSessions(gate *Gate, hashKey, blockKey []byte, secure bool, logger Logger) *Sessions {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(0)

	s := &Sessions{
		gate:   gate,
		sc:     sc,
		secure: secure,
		logger: logger,
	}
	// cookie, выданные до перезапуска, недействительны
	s.generation.Store(time.Now().UnixNano())
	return s
}

// Login проверяет пароль и переводит сессию в Authenticated
func (s *Sessions) Login(w http.ResponseWriter, credential string) error {
	if err := s.gate.Authorize(credential); err != nil {
		return err
	}

	encoded, err := s.sc.Encode(cookieName, sessionValue{Admin: true, Generation: s.generation.Load()})
	if err != nil {
		s.logger.Error("Login: failed to encode session cookie: %v", err)
		return fmt.Errorf("%w: encode cookie: %v", ErrSession, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// Logout переводит сессию в Unauthenticated
// Поколение меняется только при выходе из действующей сессии
func (s *Sessions) Logout(w http.ResponseWriter, r *http.Request) {
	if s.IsAuthenticated(r) {
		s.generation.Add(1)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// State возвращает состояние сессии запроса
func (s *Sessions) State(r *http.Request) State {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return Unauthenticated
	}

	var value sessionValue
	if err := s.sc.Decode(cookieName, c.Value, &value); err != nil {
		s.logger.Warn("State: rejected session cookie: %v", err)
		return Unauthenticated
	}

	if !value.Admin || value.Generation != s.generation.Load() {
		return Unauthenticated
	}
	return Authenticated
}

// IsAuthenticated сокращение для State(r) == Authenticated
func (s *Sessions) IsAuthenticated(r *http.Request) bool {
	return s.State(r) == Authenticated
}
