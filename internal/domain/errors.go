package domain

import (
	"errors"
	"fmt"
)

// Семейство ошибок покупки: все варианты заворачивают ErrInvalidPurchase,
// поэтому errors.Is работает и по варианту, и по семейству целиком.
var (
	// ErrInvalidPurchase — базовая (sentinel error) ошибка невалидной покупки.
	ErrInvalidPurchase = errors.New("purchase validation failed")

	// ErrInvalidTicketType — тип билета вне закрытого перечня.
	ErrInvalidTicketType = fmt.Errorf("%w: неизвестный тип билета", ErrInvalidPurchase)

	// ErrTicketLimitExceeded — суммарное количество билетов превышает лимит.
	ErrTicketLimitExceeded = fmt.Errorf("%w: превышен лимит билетов", ErrInvalidPurchase)

	// ErrMissingAdultTicket — детские/младенческие билеты без взрослого.
	ErrMissingAdultTicket = fmt.Errorf("%w: детский или младенческий билет без взрослого", ErrInvalidPurchase)
)

// wrapTicketType — ErrInvalidTicketType с конкретным значением.
func wrapTicketType(t TicketType) error {
	return fmt.Errorf("%w: %q", ErrInvalidTicketType, string(t))
}

// WrapTicketLimit — ErrTicketLimitExceeded с фактическим запрошенным количеством.
func WrapTicketLimit(requested int) error {
	return fmt.Errorf("%w: запрошено %d при лимите %d", ErrTicketLimitExceeded, requested, MaxTicketsPerPurchase)
}
