package payments

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/refund"
)

// Options параметры подключения к Stripe
type Options struct {
	SecretKey string
	Currency  string        // например "eur"
	URL       string        // пусто = api.stripe.com
	Timeout   time.Duration // таймаут одного запроса
}

// Client списывает предавторизованные PaymentIntent и возвращает списанное
type Client struct {
	intents  paymentintent.Client
	refunds  refund.Client
	currency string
	log      Logger
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(opts Options, log Logger) *Client {
	noRetries := int64(0)
	config := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: opts.Timeout},
		MaxNetworkRetries: &noRetries,
	}
	if opts.URL != "" {
		config.URL = stripe.String(opts.URL)
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, config)

	return &Client{
		intents:  paymentintent.Client{B: backend, Key: opts.SecretKey},
		refunds:  refund.Client{B: backend, Key: opts.SecretKey},
		currency: opts.Currency,
		log:      log,
	}
}

// Capture списывает amount (в основных единицах валюты) с PaymentIntent paymentID
func (c *Client) Capture(ctx context.Context, paymentID string, amount float64) error {
	cents := toMinorUnits(amount)
	if cents <= 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidAmount, amount)
	}

	params := &stripe.PaymentIntentCaptureParams{
		AmountToCapture: stripe.Int64(cents),
	}
	params.Context = ctx

	pi, err := c.intents.Capture(paymentID, params)
	if err != nil {
		c.log.Error("Capture: stripe error for payment=%s: %v", paymentID, err)
		return fmt.Errorf("%w: payment=%s: %v", ErrCaptureFailed, paymentID, err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		c.log.Warn("Capture: payment=%s has status %s", paymentID, pi.Status)
		return fmt.Errorf("%w: payment=%s status=%s", ErrNotSucceeded, paymentID, pi.Status)
	}

	if c.currency != "" && pi.Currency != "" && string(pi.Currency) != c.currency {
		c.log.Warn("Capture: payment=%s captured in %s, expected %s", paymentID, pi.Currency, c.currency)
	}

	c.log.Info("Capture: payment=%s captured %d minor units", paymentID, cents)
	return nil
}

// Refund возвращает всю списанную сумму PaymentIntent paymentID
func (c *Client) Refund(ctx context.Context, paymentID string) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentID),
	}
	params.Context = ctx

	r, err := c.refunds.New(params)
	if err != nil {
		c.log.Error("Refund: stripe error for payment=%s: %v", paymentID, err)
		return fmt.Errorf("%w: payment=%s: %v", ErrRefundFailed, paymentID, err)
	}

	if r.Status == stripe.RefundStatusFailed || r.Status == stripe.RefundStatusCanceled {
		c.log.Error("Refund: payment=%s refund %s has status %s", paymentID, r.ID, r.Status)
		return fmt.Errorf("%w: payment=%s status=%s", ErrRefundFailed, paymentID, r.Status)
	}

	c.log.Info("Refund: payment=%s refunded, refund=%s status=%s", paymentID, r.ID, r.Status)
	return nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
