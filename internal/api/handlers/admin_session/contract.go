package admin_session

import "net/http"

// Sessions менеджер сессий администратора
type Sessions interface {
	Login(w http.ResponseWriter, credential string) error
	Logout(w http.ResponseWriter, r *http.Request)
	IsAuthenticated(r *http.Request) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
