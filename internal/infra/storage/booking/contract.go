package booking

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor интерфейс для выполнения запросов
// Реализуется *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Metrics интерфейс для метрик обращений к хранилищу
type Metrics interface {
	ObserveStoreCall(operation, result string, d time.Duration)
}
