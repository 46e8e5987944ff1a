package domain

// TicketType — закрытый перечень категорий билетов.
type TicketType string

const (
	TicketAdult  TicketType = "ADULT"
	TicketChild  TicketType = "CHILD"
	TicketInfant TicketType = "INFANT"
)

// MaxTicketsPerPurchase — максимум билетов в одной покупке (по всем категориям).
const MaxTicketsPerPurchase = 20

// ticketPrices — неизменяемая таблица цен (целые единицы валюты).
// Собирается один раз на старте, не пересчитывается на каждый вызов.
var ticketPrices = map[TicketType]int{
	TicketAdult:  20,
	TicketChild:  10,
	TicketInfant: 0,
}

// Valid — входит ли тип в закрытый перечень.
func (t TicketType) Valid() bool {
	_, ok := ticketPrices[t]
	return ok
}

// PriceOf — цена билета по типу.
// Для типа вне перечня возвращает ErrInvalidTicketType: на границе тип
// задан enum'ом, но контракт проверяем и здесь.
func PriceOf(t TicketType) (int, error) {
	price, ok := ticketPrices[t]
	if !ok {
		return 0, wrapTicketType(t)
	}
	return price, nil
}

// TicketRequest — неизменяемый запрос на билеты одной категории.
// Нулевое количество допустимо и ни на что не влияет.
type TicketRequest struct {
	Type     TicketType `json:"ticket_type"`
	Quantity int        `json:"quantity"`
}

// PurchaseOrder — одна покупка: идентификатор счёта и упорядоченный
// список запросов. Живёт в рамках одного вызова, нигде не сохраняется.
type PurchaseOrder struct {
	AccountID int64           `json:"account_id"`
	Tickets   []TicketRequest `json:"tickets"`
}

// TicketCounts — суммарные количества по категориям.
type TicketCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total — общее число билетов по всем категориям.
func (c TicketCounts) Total() int { return c.Adults + c.Children + c.Infants }

// CountTickets — агрегирует количества по категориям, суммируя повторные
// запросы одного типа. Пустой список даёт нулевые счётчики.
// Неизвестные типы здесь не учитываются — их отсеивает валидация.
func CountTickets(requests []TicketRequest) TicketCounts {
	var counts TicketCounts
	for _, r := range requests {
		switch r.Type {
		case TicketAdult:
			counts.Adults += r.Quantity
		case TicketChild:
			counts.Children += r.Quantity
		case TicketInfant:
			counts.Infants += r.Quantity
		}
	}
	return counts
}

// TotalCost — суммарная стоимость покупки: Σ цена(тип) × количество.
// Вызывается только после успешной валидации (fail-fast).
func (o *PurchaseOrder) TotalCost() (int, error) {
	total := 0
	for _, r := range o.Tickets {
		price, err := PriceOf(r.Type)
		if err != nil {
			return 0, err
		}
		total += price * r.Quantity
	}
	return total, nil
}

// Receipt — результат успешной покупки: что оплачено и сколько мест занято.
// Младенцы мест не занимают, поэтому SeatsReserved может быть меньше Total.
type Receipt struct {
	AccountID     int64        `json:"account_id"`
	TotalCost     int          `json:"total_cost"`
	SeatsReserved int          `json:"seats_reserved"`
	Counts        TicketCounts `json:"counts"`
}
