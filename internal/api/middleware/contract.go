package middleware

import (
	"net/http"
	"time"
)

// Metrics интерфейс сбора HTTP метрик
type Metrics interface {
	ObserveHTTPRequest(method, path string, status int, d time.Duration)
}

// SessionChecker проверяет сессию администратора
type SessionChecker interface {
	IsAuthenticated(r *http.Request) bool
}

type Logger interface {
	Warn(format string, v ...interface{})
}
