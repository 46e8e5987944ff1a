//go:build integration

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// PaymentCall — один принятый платёж.
type PaymentCall struct {
	AccountID int64 `json:"account_id"`
	Amount    int   `json:"amount"`
}

// ReservationCall — одно принятое бронирование.
type ReservationCall struct {
	AccountID int64 `json:"account_id"`
	SeatCount int   `json:"seat_count"`
}

// GatewayRecorder — стаб внешних сервисов оплаты и бронирования:
// принимает POST /payments и POST /reservations, запоминает вызовы.
type GatewayRecorder struct {
	mu           sync.Mutex
	payments     []PaymentCall
	reservations []ReservationCall

	Server *httptest.Server
}

// StartGatewayRecorder — поднимает httptest-сервер обоих коллабораторов.
func StartGatewayRecorder() *GatewayRecorder {
	g := &GatewayRecorder{}

	mux := http.NewServeMux()
	mux.HandleFunc("/payments", func(w http.ResponseWriter, r *http.Request) {
		var call PaymentCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		g.mu.Lock()
		g.payments = append(g.payments, call)
		g.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/reservations", func(w http.ResponseWriter, r *http.Request) {
		var call ReservationCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		g.mu.Lock()
		g.reservations = append(g.reservations, call)
		g.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	g.Server = httptest.NewServer(mux)
	return g
}

// URL — базовый адрес стаба.
func (g *GatewayRecorder) URL() string { return g.Server.URL }

// Close — останавливает сервер.
func (g *GatewayRecorder) Close() { g.Server.Close() }

// Payments — копия списка принятых платежей.
func (g *GatewayRecorder) Payments() []PaymentCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]PaymentCall, len(g.payments))
	copy(out, g.payments)
	return out
}

// Reservations — копия списка принятых бронирований.
func (g *GatewayRecorder) Reservations() []ReservationCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]ReservationCall, len(g.reservations))
	copy(out, g.reservations)
	return out
}

// PaymentsFor — платежи конкретного аккаунта.
func (g *GatewayRecorder) PaymentsFor(accountID int64) []PaymentCall {
	var out []PaymentCall
	for _, p := range g.Payments() {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	return out
}
