package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/gateway"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/httpx"
)

// idempotencyKeyHeader — клиентский ключ повтора запроса.
const idempotencyKeyHeader = "Idempotency-Key"

// Handler — HTTP-обработчики покупок.
type Handler struct {
	service        ports.PurchaseProcessor
	receipts       ports.ReceiptCache // может быть nil — тогда идемпотентность выключена
	log            ports.Logger
	handlerTimeout time.Duration
}

// NewHandler — DI-конструктор. handlerTimeout <= 0 означает "без таймаута".
func NewHandler(service ports.PurchaseProcessor, receipts ports.ReceiptCache, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{service: service, receipts: receipts, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — собирает gin-роутер с общими middleware.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/purchases", h.createPurchase)

	return r
}

// createPurchase — принять заявку, провести покупку и вернуть чек.
// Коды ответов:
//
//	201 — покупка проведена, в теле чек;
//	200 — повтор по Idempotency-Key, в теле ранее выданный чек;
//	400 — тело не является корректным JSON заявки;
//	422 — заявка не прошла бизнес-валидацию;
//	502 — отказ платёжного сервиса или сервиса бронирования;
//	500 — прочие ошибки.
func (h *Handler) createPurchase(c *gin.Context) {
	ctx := c.Request.Context()
	if h.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.handlerTimeout)
		defer cancel()
	}

	// Повтор по ключу идемпотентности — отдаём сохранённый чек без побочных эффектов
	idemKey := c.GetHeader(idempotencyKeyHeader)
	if idemKey != "" && h.receipts != nil {
		if receipt, ok := h.receipts.Get(ctx, idemKey); ok {
			c.Header("X-Idempotency-Hit", "true")
			c.JSON(http.StatusOK, receipt)
			return
		}
	}

	var order domain.PurchaseOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	receipt, err := h.service.Purchase(ctx, &order)
	switch {
	case err == nil:
		if idemKey != "" && h.receipts != nil {
			if cacheErr := h.receipts.Set(ctx, idemKey, receipt); cacheErr != nil {
				h.log.Warnf(ctx, "receipt cache set failed key=%s: %v", idemKey, cacheErr)
			}
		}
		c.JSON(http.StatusCreated, receipt)
	case errors.Is(err, domain.ErrInvalidPurchase):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, gateway.ErrPaymentFailed), errors.Is(err, gateway.ErrReservationFailed):
		h.log.Errorf(ctx, "purchase failed account_id=%d err=%v", order.AccountID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service failure"})
	default:
		h.log.Errorf(ctx, "purchase failed account_id=%d err=%v", order.AccountID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
