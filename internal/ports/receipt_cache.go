package ports

import (
	"context"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// ReceiptCache — кэш чеков по ключу идемпотентности.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1);
// возврат копий, чтобы вызывающий не мог изменить данные внутри кэша.
type ReceiptCache interface {
	// Get — вернуть чек по ключу; (receipt, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) (*domain.Receipt, bool)

	// Set — сохранить/обновить чек в кэше.
	Set(ctx context.Context, key string, receipt *domain.Receipt) error
}
