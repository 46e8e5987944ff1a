package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
)

// Проверка, что PurchaseService удовлетворяет интерфейсу PurchaseProcessor.
var _ ports.PurchaseProcessor = (*PurchaseService)(nil)

// PurchaseService — прикладная логика покупки билетов (без знаний о транспорте).
// Конвейер одного вызова: валидация → расчёт цены → оплата → бронирование.
// Состояния между вызовами нет: сервис держит только ссылки на коллабораторов,
// заданные при сборке и не переприсваиваемые.
type PurchaseService struct {
	payment     ports.PaymentGateway         // платёжный сервис
	reservation ports.SeatReservationGateway // сервис бронирования мест
	log         ports.Logger                 // прямой доступ к логгеру
	validator   ports.PurchaseValidator      // прямой доступ к валидатору
}

// NewPurchaseService — DI-конструктор.
func NewPurchaseService(
	payment ports.PaymentGateway,
	reservation ports.SeatReservationGateway,
	log ports.Logger,
	validator ports.PurchaseValidator,
) *PurchaseService {
	return &PurchaseService{
		payment:     payment,
		reservation: reservation,
		log:         log,
		validator:   validator,
	}
}

// Purchase — обработать одну покупку.
// Шаги:
//  1. валидация бизнес-правил (лимит, правило взрослого билета) — до любых
//     побочных эффектов; невалидный заказ не доходит ни до оплаты, ни до брони;
//  2. расчёт стоимости по таблице цен;
//  3. оплата одним вызовом на всю сумму;
//  4. бронирование: по одному вызову на каждый не-младенческий запрос,
//     строго в порядке запросов; младенцы мест не занимают.
//
// Ошибки коллабораторов не переклассифицируются и не ретраятся: логируем и
// отдаём вызывающему как есть. Успешная оплата при упавшей броне не
// компенсируется — это известный пробел, разрешаемый на стороне вызывающего.
func (s *PurchaseService) Purchase(ctx context.Context, order *domain.PurchaseOrder) (*domain.Receipt, error) {
	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "validation failed account_id=%d err=%v", accountID(order), err)
		metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	total, err := order.TotalCost()
	if err != nil {
		// Валидация уже проверила типы; сюда можно попасть только в обход границы.
		s.log.Warnf(ctx, "pricing failed account_id=%d err=%v", order.AccountID, err)
		metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	start := time.Now()
	if err := s.payment.MakePayment(ctx, order.AccountID, total); err != nil {
		s.log.Errorf(ctx, "payment failed account_id=%d amount=%d err=%v", order.AccountID, total, err)
		metrics.GatewayRequests.WithLabelValues("payment", "error").Inc()
		metrics.PurchasesTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("payment: %w", err)
	}
	metrics.GatewayRequests.WithLabelValues("payment", "ok").Inc()

	// Бронирование выполняется только после успешной оплаты, последовательно,
	// по одному вызову на запрос — без агрегации повторных запросов одного типа.
	seats := 0
	for _, r := range order.Tickets {
		if r.Type == domain.TicketInfant {
			continue
		}
		if err := s.reservation.ReserveSeat(ctx, order.AccountID, r.Quantity); err != nil {
			s.log.Errorf(ctx, "seat reservation failed account_id=%d seats=%d err=%v (payment of %d already made, not compensated)",
				order.AccountID, r.Quantity, err, total)
			metrics.GatewayRequests.WithLabelValues("reservation", "error").Inc()
			metrics.PurchasesTotal.WithLabelValues("failed").Inc()
			return nil, fmt.Errorf("seat reservation: %w", err)
		}
		metrics.GatewayRequests.WithLabelValues("reservation", "ok").Inc()
		seats += r.Quantity
	}

	counts := domain.CountTickets(order.Tickets)
	metrics.PurchasesTotal.WithLabelValues("accepted").Inc()
	metrics.TicketsSold.WithLabelValues(string(domain.TicketAdult)).Add(float64(counts.Adults))
	metrics.TicketsSold.WithLabelValues(string(domain.TicketChild)).Add(float64(counts.Children))
	metrics.TicketsSold.WithLabelValues(string(domain.TicketInfant)).Add(float64(counts.Infants))

	s.log.Infof(ctx, "purchase done account_id=%d total=%d seats=%d took=%s",
		order.AccountID, total, seats, time.Since(start))

	return &domain.Receipt{
		AccountID:     order.AccountID,
		TotalCost:     total,
		SeatsReserved: seats,
		Counts:        counts,
	}, nil
}

// ProcessFromMessage — обработать покупку, пришедшую из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. полный конвейер Purchase (валидация, оплата, бронирование).
func (s *PurchaseService) ProcessFromMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var order domain.PurchaseOrder
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&order); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", domain.ErrInvalidPurchase, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", domain.ErrInvalidPurchase)
	}

	if _, err := s.Purchase(ctx, &order); err != nil {
		return err
	}
	return nil
}

// accountID — безопасно достаёт идентификатор счёта для логов.
func accountID(order *domain.PurchaseOrder) int64 {
	if order == nil {
		return 0
	}
	return order.AccountID
}
