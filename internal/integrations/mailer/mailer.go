package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

const sendEndpoint = "/v3/mail/send"

// Options параметры отправки писем
type Options struct {
	APIKey    string
	FromEmail string
	FromName  string
	URL       string         // пусто = api.sendgrid.com
	Location  *time.Location // зона для времени в письме
}

// Mailer отправляет подтверждения бронирований через SendGrid
type Mailer struct {
	client   *sendgrid.Client
	from     *mail.Email
	location *time.Location
	log      Logger
}

// New создает новый экземпляр отправителя
func New(opts Options, log Logger) *Mailer {
	client := sendgrid.NewSendClient(opts.APIKey)
	if opts.URL != "" {
		client.Request.BaseURL = strings.TrimRight(opts.URL, "/") + sendEndpoint
	}

	location := opts.Location
	if location == nil {
		location = time.Local
	}

	return &Mailer{
		client:   client,
		from:     mail.NewEmail(opts.FromName, opts.FromEmail),
		location: location,
		log:      log,
	}
}

// SendConfirmation отправляет арендатору подтверждение бронирования
func (m *Mailer) SendConfirmation(ctx context.Context, booking *domain.Booking) error {
	if booking.Contact == nil || booking.Contact.Email == "" {
		return ErrNoRecipient
	}

	subject, plain, body := confirmationContent(booking, m.location)
	to := mail.NewEmail(booking.Contact.Name, booking.Contact.Email)
	message := mail.NewSingleEmail(m.from, subject, to, plain, body)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		m.log.Error("SendConfirmation: sendgrid request failed for booking id=%s: %v", booking.ID, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		m.log.Error("SendConfirmation: sendgrid status %d for booking id=%s: %s", response.StatusCode, booking.ID, response.Body)
		return fmt.Errorf("%w: status %d", ErrSendFailed, response.StatusCode)
	}

	m.log.Info("SendConfirmation: confirmation for booking id=%s sent", booking.ID)
	return nil
}

// confirmationContent формирует тему и тело письма
func confirmationContent(b *domain.Booking, loc *time.Location) (subject, plain, body string) {
	start := b.Start.In(loc)
	end := b.End.In(loc)
	date := start.Format("02.01.2006")
	from := start.Format(domain.TimeFormat)
	to := end.Format(domain.TimeFormat)

	subject = fmt.Sprintf("Buchungsbestätigung Hebebühne %s", date)
	plain = fmt.Sprintf(
		"Hallo %s,\n\nIhre Buchung der Hebebühne am %s von %s bis %s Uhr ist bestätigt.\nPreis: %.2f €\nBuchungsnummer: %s\n",
		b.Contact.Name, date, from, to, b.Price, b.ID)
	body = fmt.Sprintf(
		"<p>Hallo %s,</p><p>Ihre Buchung der Hebebühne am <strong>%s</strong> von %s bis %s Uhr ist bestätigt.</p><p>Preis: %.2f €<br>Buchungsnummer: %s</p>",
		html.EscapeString(b.Contact.Name), date, from, to, b.Price, html.EscapeString(b.ID))

	return subject, plain, body
}
