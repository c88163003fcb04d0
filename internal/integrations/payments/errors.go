package payments

import "errors"

var (
	// ErrCaptureFailed возвращается, когда Stripe отклонил списание
	ErrCaptureFailed = errors.New("payments client: capture failed")

	// ErrNotSucceeded возвращается, когда после списания платеж не в статусе succeeded
	ErrNotSucceeded = errors.New("payments client: payment not succeeded")

	// ErrRefundFailed возвращается, когда Stripe не принял возврат
	ErrRefundFailed = errors.New("payments client: refund failed")

	// ErrInvalidAmount возвращается при неположительной сумме
	ErrInvalidAmount = errors.New("payments client: invalid amount")
)
