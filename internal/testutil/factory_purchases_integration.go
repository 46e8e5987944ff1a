//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// UniqAccountID — случайный положительный идентификатор аккаунта.
func UniqAccountID() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	id := int64(binary.BigEndian.Uint64(b[:]) & 0x7fffffffffff)
	if id == 0 {
		id = 1
	}
	return id
}

// MakePurchase — мини-генератор валидной заявки на покупку.
func MakePurchase(opts ...func(*domain.PurchaseOrder)) domain.PurchaseOrder {
	o := domain.PurchaseOrder{
		AccountID: UniqAccountID(),
		Tickets: []domain.TicketRequest{
			{Type: domain.TicketAdult, Quantity: 2},
			{Type: domain.TicketChild, Quantity: 1},
		},
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithAccountID — переопределяет аккаунт.
func WithAccountID(id int64) func(*domain.PurchaseOrder) {
	return func(o *domain.PurchaseOrder) { o.AccountID = id }
}

// WithTickets — полностью заменяет список билетов.
func WithTickets(tickets ...domain.TicketRequest) func(*domain.PurchaseOrder) {
	return func(o *domain.PurchaseOrder) { o.Tickets = tickets }
}
