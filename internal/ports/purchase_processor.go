package ports

import (
	"context"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// PurchaseProcessor — сервис обработки покупок, каким его видит транспортный слой.
type PurchaseProcessor interface {
	Purchase(ctx context.Context, order *domain.PurchaseOrder) (*domain.Receipt, error)
}
