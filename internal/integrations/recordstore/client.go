package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// Options параметры подключения к хранилищу записей
type Options struct {
	URL               string // например https://api.airtable.com/v0
	BaseID            string
	Table             string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 = без ограничения
}

// Client клиент REST хранилища записей (протокол Airtable v0)
type Client struct {
	tableURL   string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(opts Options, metrics Metrics, log Logger) *Client {
	limit := rate.Inf
	burst := 1
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
		if int(opts.RequestsPerSecond) > burst {
			burst = int(opts.RequestsPerSecond)
		}
	}

	return &Client{
		tableURL: fmt.Sprintf("%s/%s/%s",
			strings.TrimRight(opts.URL, "/"), url.PathEscape(opts.BaseID), url.PathEscape(opts.Table)),
		apiKey: opts.APIKey,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		metrics: metrics,
		log:     log,
	}
}

// ListFrom возвращает записи с началом не раньше from, отсортированные по началу
// Постранично проходит все страницы (offset)
func (c *Client) ListFrom(ctx context.Context, from time.Time) ([]*domain.Booking, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf("NOT(IS_BEFORE({startTime}, '%s'))", formatTime(from)))
	query.Set("sort[0][field]", "startTime")
	query.Set("sort[0][direction]", "asc")

	bookings := make([]*domain.Booking, 0)
	for {
		var page listResponse
		if err := c.do(ctx, "list", http.MethodGet, "", query, nil, &page); err != nil {
			return nil, err
		}

		for _, rec := range page.Records {
			b, err := rec.toDomain()
			if err != nil {
				c.log.Warn("ListFrom: skipping malformed record: %v", err)
				continue
			}
			bookings = append(bookings, b)
		}

		if page.Offset == "" {
			break
		}
		query.Set("offset", page.Offset)
	}

	c.log.Debug("ListFrom: fetched %d records from %s", len(bookings), formatTime(from))
	return bookings, nil
}

// HasOverlap проверяет на стороне хранилища, есть ли запись, пересекающаяся с [start, end)
// Формула использует строгие сравнения: соседние интервалы не пересекаются
func (c *Client) HasOverlap(ctx context.Context, start, end time.Time) (bool, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf("AND(IS_BEFORE({startTime}, '%s'), IS_AFTER({endTime}, '%s'))",
		formatTime(end), formatTime(start)))
	query.Set("maxRecords", "1")
	query.Add("fields[]", "startTime")

	var page listResponse
	if err := c.do(ctx, "overlap", http.MethodGet, "", query, nil, &page); err != nil {
		return false, err
	}

	return len(page.Records) > 0, nil
}

// Create создает запись и возвращает бронирование с присвоенным ID
func (c *Client) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	body := createRequest{
		Records:  []record{{Fields: toFields(booking)}},
		Typecast: true,
	}

	var resp listResponse
	if err := c.do(ctx, "create", http.MethodPost, "", nil, body, &resp); err != nil {
		return nil, err
	}

	if len(resp.Records) == 0 {
		return nil, fmt.Errorf("%w: create returned no records", ErrInvalidResponse)
	}

	created, err := resp.Records[0].toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Create: record id=%s created", created.ID)
	return created, nil
}

// Delete удаляет запись по ID
func (c *Client) Delete(ctx context.Context, id string) error {
	var resp deleteResponse
	if err := c.do(ctx, "delete", http.MethodDelete, "/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return err
	}

	if !resp.Deleted {
		return fmt.Errorf("%w: record id=%s not deleted", ErrInvalidResponse, id)
	}

	c.log.Info("Delete: record id=%s deleted", id)
	return nil
}

// do выполняет запрос с учетом ограничения частоты и переводит ответ в ошибки клиента
func (c *Client) do(
	ctx context.Context,
	operation string,
	method string,
	path string,
	query url.Values,
	body interface{},
	out interface{},
) (err error) {
	started := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		c.metrics.ObserveStoreCall(operation, result, time.Since(started))
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s: rate limiter: %v", ErrUnavailable, operation, err)
	}

	target := c.tableURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %s: encode body: %v", ErrInvalidResponse, operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to create request: %v", ErrUnavailable, operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s: request failed: %v", operation, err)
		return fmt.Errorf("%w: %s: failed to execute request: %v", ErrUnavailable, operation, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error("%s: store unavailable, status %d: %s", operation, resp.StatusCode, string(msg))
		return fmt.Errorf("%w: %s: status %d", ErrUnavailable, operation, resp.StatusCode)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error("%s: store rejected request, status %d: %s", operation, resp.StatusCode, string(msg))
		return fmt.Errorf("%w: %s: status %d: %s", ErrRejected, operation, resp.StatusCode, string(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, operation, err)
	}

	return nil
}
