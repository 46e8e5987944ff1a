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

// Проверка, что ReservationClient удовлетворяет интерфейсу SeatReservationGateway.
var _ ports.SeatReservationGateway = (*ReservationClient)(nil)

// ErrReservationFailed — сервис бронирования отказал или недоступен.
var ErrReservationFailed = errors.New("seat reservation failed")

// ReservationClient — HTTP-клиент сервиса бронирования мест.
// Контракт фиксированный: POST /reservations, тело {account_id, seat_count}.
type ReservationClient struct {
	baseURL string
	client  *http.Client
	log     ports.Logger
}

// NewReservationClient — конструктор; timeout ограничивает каждый вызов.
func NewReservationClient(baseURL string, timeout time.Duration, log ports.Logger) *ReservationClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ReservationClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type reservationRequest struct {
	AccountID int64 `json:"account_id"`
	SeatCount int   `json:"seat_count"`
}

// ReserveSeat — забронировать seatCount мест для счёта accountID.
func (c *ReservationClient) ReserveSeat(ctx context.Context, accountID int64, seatCount int) error {
	body, err := json.Marshal(reservationRequest{AccountID: accountID, SeatCount: seatCount})
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrReservationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reservations", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrReservationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReservationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warnf(ctx, "reservation service status=%d account_id=%d seats=%d body=%q",
			resp.StatusCode, accountID, seatCount, snippet)
		return fmt.Errorf("%w: unexpected status %d", ErrReservationFailed, resp.StatusCode)
	}
	return nil
}
