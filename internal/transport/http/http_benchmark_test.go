//go:build !integration

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// --- Бенчмарки ---

// Базовый бенч: POST /purchases (валидная заявка) — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_CreatePurchase(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcFixed{r: benchReceipt()}, nil, log, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	body := benchBody(2, 1)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServePOST(b, lean, "/purchases", body, http.StatusCreated)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServePOST(b, full, "/purchases", body, http.StatusCreated)
	})
}

// Потолок без маршалинга: тот же чек, но заранее закодированный JSON.
// Показывает, сколько «ест» encoding/json в хендлере.
func BenchmarkHTTP_CreatePurchase_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(benchReceipt())

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// отдельный эндпоинт, который просто отдаёт готовый []byte
	r.POST("/purchases", func(c *gin.Context) {
		_, _ = io.Copy(io.Discard, c.Request.Body)
		c.Data(http.StatusCreated, "application/json", raw)
	})

	benchServePOST(b, r, "/purchases", benchBody(2, 1), http.StatusCreated)
}

// Размер заявки: 1/5/10 позиций — измеряем рост аллокаций и времени на бинд
func BenchmarkHTTP_CreatePurchase_TicketLines(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcFixed{r: benchReceipt()}, nil, log, 2*time.Second)
	lean := makeLeanRouter(h)

	for _, n := range []int{1, 5, 10} {
		b.Run("lines="+strconv.Itoa(n), func(b *testing.B) {
			tickets := make([]domain.TicketRequest, 0, n)
			for i := 0; i < n; i++ {
				tickets = append(tickets, domain.TicketRequest{Type: domain.TicketAdult, Quantity: 1})
			}
			raw, _ := json.Marshal(domain.PurchaseOrder{AccountID: 1, Tickets: tickets})
			benchServePOST(b, lean, "/purchases", raw, http.StatusCreated)
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcFixed{r: benchReceipt()}, nil, log, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

// svcFixed отдаёт заранее готовый чек без валидации и побочных эффектов.
type svcFixed struct{ r *domain.Receipt }

func (s svcFixed) Purchase(context.Context, *domain.PurchaseOrder) (*domain.Receipt, error) {
	return s.r, nil
}

// --- функции-помощники ---

func benchReceipt() *domain.Receipt {
	return &domain.Receipt{
		AccountID:     1,
		TotalCost:     50,
		SeatsReserved: 3,
		Counts:        domain.TicketCounts{Adults: 2, Children: 1},
	}
}

func benchBody(adults, children int) []byte {
	raw, _ := json.Marshal(domain.PurchaseOrder{
		AccountID: 1,
		Tickets: []domain.TicketRequest{
			{Type: domain.TicketAdult, Quantity: adults},
			{Type: domain.TicketChild, Quantity: children},
		},
	})
	return raw
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.POST("/purchases", h.createPurchase)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServePOST(b *testing.B, r *gin.Engine, path string, body []byte, wantStatus int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != wantStatus {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
