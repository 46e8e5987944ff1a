package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

// Проверка, что PaymentClient удовлетворяет интерфейсу PaymentGateway.
var _ ports.PaymentGateway = (*PaymentClient)(nil)

// ErrPaymentFailed — платёжный сервис отклонил оплату или недоступен.
var ErrPaymentFailed = errors.New("payment failed")

// PaymentClient — HTTP-клиент платёжного сервиса.
// Контракт фиксированный: POST /payments, тело {account_id, amount},
// любой не-2xx ответ считается отказом.
type PaymentClient struct {
	baseURL string
	client  *http.Client
	log     ports.Logger
}

// NewPaymentClient — конструктор; timeout ограничивает каждый вызов.
func NewPaymentClient(baseURL string, timeout time.Duration, log ports.Logger) *PaymentClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &PaymentClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type paymentRequest struct {
	AccountID int64 `json:"account_id"`
	Amount    int   `json:"amount"`
}

// MakePayment — списать amount со счёта accountID.
// Вызов синхронный: либо успех, либо ErrPaymentFailed с причиной.
func (c *PaymentClient) MakePayment(ctx context.Context, accountID int64, amount int) error {
	body, err := json.Marshal(paymentRequest{AccountID: accountID, Amount: amount})
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrPaymentFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrPaymentFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// тело ответа — только для диагностики, наружу не отдаём
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warnf(ctx, "payment service status=%d account_id=%d amount=%d body=%q",
			resp.StatusCode, accountID, amount, snippet)
		return fmt.Errorf("%w: unexpected status %d", ErrPaymentFailed, resp.StatusCode)
	}
	return nil
}
