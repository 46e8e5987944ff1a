package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

// Проверка, что PurchaseValidator удовлетворяет интерфейсу PurchaseValidator.
var _ ports.PurchaseValidator = (*PurchaseValidator)(nil)

// PurchaseValidator — проверка бизнес-правил покупки билетов.
// Порядок проверок фиксирован: форма запроса → лимит количества →
// правило взрослого билета. Первая нарушенная проверка останавливает
// остальные (first-fail-wins), причины не агрегируются.
type PurchaseValidator struct{}

// NewPurchaseValidator — конструктор PurchaseValidator.
func NewPurchaseValidator() *PurchaseValidator { return &PurchaseValidator{} }

// Validate — проверяет корректность покупки до любых побочных эффектов.
// Возвращает вариант domain.ErrInvalidPurchase при любой проблеме.
func (v *PurchaseValidator) Validate(_ context.Context, order *domain.PurchaseOrder) error {
	if err := v.validateShape(order); err != nil {
		return err
	}

	counts := domain.CountTickets(order.Tickets)

	if err := v.validateLimit(counts); err != nil {
		return err
	}
	return v.validateAdultPresence(counts)
}

// validateShape — форма запроса: ненулевой заказ, положительный счёт,
// неотрицательные количества, известные типы билетов.
func (v *PurchaseValidator) validateShape(order *domain.PurchaseOrder) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", domain.ErrInvalidPurchase)
	}
	if order.AccountID <= 0 {
		return fmt.Errorf("%w: account_id должен быть положительным", domain.ErrInvalidPurchase)
	}
	for i, r := range order.Tickets {
		if !r.Type.Valid() {
			return fmt.Errorf("%w: tickets[%d] тип %q", domain.ErrInvalidTicketType, i, string(r.Type))
		}
		if r.Quantity < 0 {
			return fmt.Errorf("%w: tickets[%d].quantity должен быть неотрицательным", domain.ErrInvalidPurchase, i)
		}
	}
	return nil
}

// validateLimit — суммарное количество по всем категориям не больше лимита.
func (v *PurchaseValidator) validateLimit(counts domain.TicketCounts) error {
	if total := counts.Total(); total > domain.MaxTicketsPerPurchase {
		return domain.WrapTicketLimit(total)
	}
	return nil
}

// validateAdultPresence — детские/младенческие билеты требуют хотя бы одного
// взрослого. Правило применяется к заказу целиком: повторные запросы одного
// типа суммируются до проверки.
func (v *PurchaseValidator) validateAdultPresence(counts domain.TicketCounts) error {
	if (counts.Children > 0 || counts.Infants > 0) && counts.Adults == 0 {
		return domain.ErrMissingAdultTicket
	}
	return nil
}
