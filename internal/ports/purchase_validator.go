package ports

import (
	"context"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// PurchaseValidator — проверка бизнес-правил покупки до любых побочных эффектов.
type PurchaseValidator interface {
	Validate(ctx context.Context, order *domain.PurchaseOrder) error
}
