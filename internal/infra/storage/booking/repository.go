package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
	"github.com/m04kA/SMC-LiftRental/pkg/psqlbuilder"
)

const (
	tableName = "bookings"

	// код exclusion_violation, см. ограничение bookings_no_overlap в миграции
	pqExclusionViolation = "23P01"
)

var columns = []string{
	"id",
	"start_time",
	"end_time",
	"kind",
	"name",
	"email",
	"phone",
	"price",
	"created_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db      DBExecutor
	metrics Metrics
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, metrics Metrics) *Repository {
	return &Repository{db: db, metrics: metrics}
}

// ListFrom возвращает бронирования с началом не раньше from, по возрастанию начала
func (r *Repository) ListFrom(ctx context.Context, from time.Time) (_ []*domain.Booking, err error) {
	defer r.observe("list", time.Now(), &err)

	query, args, err := buildListQuery(from)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListFrom - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFrom - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// HasOverlap проверяет, есть ли бронирование, пересекающееся с [start, end)
func (r *Repository) HasOverlap(ctx context.Context, start, end time.Time) (_ bool, err error) {
	defer r.observe("overlap", time.Now(), &err)

	query, args, err := buildOverlapQuery(start, end)
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - execute select: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Create сохраняет бронирование и возвращает его с присвоенным ID
// Пересечение с существующей записью отвергается ограничением bookings_no_overlap
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (_ *domain.Booking, err error) {
	defer r.observe("create", time.Now(), &err)

	created := *booking
	created.ID = uuid.NewString()

	query, args, err := buildInsertQuery(&created)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqExclusionViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// Delete удаляет бронирование по ID
func (r *Repository) Delete(ctx context.Context, id string) (err error) {
	defer r.observe("delete", time.Now(), &err)

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return ErrBookingNotFound
	}

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) observe(operation string, started time.Time, err *error) {
	if r.metrics == nil {
		return
	}
	result := "ok"
	if *err != nil {
		result = "error"
	}
	r.metrics.ObserveStoreCall(operation, result, time.Since(started))
}

func buildListQuery(from time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.GtOrEq{"start_time": from}).
		OrderBy("start_time ASC").
		ToSql()
}

// строгие сравнения: соседние интервалы не пересекаются
func buildOverlapQuery(start, end time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		Limit(1).
		ToSql()
}

func buildInsertQuery(b *domain.Booking) (string, []interface{}, error) {
	var name, email, phone sql.NullString
	if !b.IsAdministrativeHold() && b.Contact != nil {
		name = sql.NullString{String: b.Contact.Name, Valid: true}
		email = sql.NullString{String: b.Contact.Email, Valid: true}
		phone = sql.NullString{String: b.Contact.Phone, Valid: true}
	}

	return psqlbuilder.Insert(tableName).
		Columns("id", "start_time", "end_time", "kind", "name", "email", "phone", "price").
		Values(b.ID, b.Start.UTC(), b.End.UTC(), string(b.Kind), name, email, phone, b.Price).
		Suffix("RETURNING created_at").
		ToSql()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var (
		b                  domain.Booking
		kind               string
		name, email, phone sql.NullString
	)

	if err := row.Scan(&b.ID, &b.Start, &b.End, &kind, &name, &email, &phone, &b.Price, &b.CreatedAt); err != nil {
		return nil, err
	}

	b.Kind = domain.Kind(kind)
	if b.Kind != domain.KindAdministrativeHold {
		b.Kind = domain.KindReservation
		b.Contact = &domain.Contact{Name: name.String, Email: email.String, Phone: phone.String}
	}

	return &b, nil
}
