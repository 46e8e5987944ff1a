package ports

import "context"

// SeatReservationGateway — внешний сервис бронирования мест.
type SeatReservationGateway interface {
	// ReserveSeat — забронировать seatCount мест для счёта accountID.
	ReserveSeat(ctx context.Context, accountID int64, seatCount int) error
}
