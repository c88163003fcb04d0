package recordstore

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// fields поля записи бронирования в таблице
type fields struct {
	Kind      string  `json:"kind,omitempty"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Price     float64 `json:"price"`
}

// record запись таблицы
type record struct {
	ID          string `json:"id,omitempty"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      fields `json:"fields"`
}

// listResponse ответ на запрос списка записей
type listResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// createRequest тело запроса на создание записей
type createRequest struct {
	Records  []record `json:"records"`
	Typecast bool     `json:"typecast"`
}

// deleteResponse ответ на удаление записи
type deleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// formatTime форматирует момент времени для полей и формул
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// toFields конвертирует бронирование в поля записи
func toFields(b *domain.Booking) fields {
	name, email, phone := domain.RecordContact(b)
	kind := b.Kind
	if kind == "" {
		kind = domain.KindReservation
	}
	return fields{
		Kind:      string(kind),
		StartTime: formatTime(b.Start),
		EndTime:   formatTime(b.End),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Price:     b.Price,
	}
}

// toDomain конвертирует запись в бронирование
func (r record) toDomain() (*domain.Booking, error) {
	start, err := time.Parse(time.RFC3339, r.Fields.StartTime)
	if err != nil {
		return nil, fmt.Errorf("record %s: parse startTime: %w", r.ID, err)
	}
	end, err := time.Parse(time.RFC3339, r.Fields.EndTime)
	if err != nil {
		return nil, fmt.Errorf("record %s: parse endTime: %w", r.ID, err)
	}

	kind, contact := domain.KindFromRecord(r.Fields.Kind, r.Fields.Name, r.Fields.Email, r.Fields.Phone)

	b := &domain.Booking{
		ID:      r.ID,
		Start:   start,
		End:     end,
		Kind:    kind,
		Contact: contact,
		Price:   r.Fields.Price,
	}
	if created, err := time.Parse(time.RFC3339, r.CreatedTime); err == nil {
		b.CreatedAt = created
	}
	return b, nil
}
