package ports

import "context"

// PaymentGateway — внешний платёжный сервис.
// Контракт фиксированный и непрозрачный: либо успех, либо ошибка,
// внутренности сервиса ядру неизвестны.
type PaymentGateway interface {
	// MakePayment — списать amount (целые единицы валюты) со счёта accountID.
	MakePayment(ctx context.Context, accountID int64, amount int) error
}
