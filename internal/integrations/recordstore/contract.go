package recordstore

import "time"

// Metrics интерфейс для метрик обращений к хранилищу
type Metrics interface {
	ObserveStoreCall(operation, result string, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
