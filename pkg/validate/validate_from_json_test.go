package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// purchaseJSON — минимальная валидная покупка в JSON.
func purchaseJSON(accountID int64, adults, children int) string {
	return fmt.Sprintf(
		`{"account_id":%d,"tickets":[{"ticket_type":"ADULT","quantity":%d},{"ticket_type":"CHILD","quantity":%d}]}`,
		accountID, adults, children,
	)
}

func TestValidatePurchaseFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	order, err := ValidatePurchaseFromJSON(ctx, validator, []byte(purchaseJSON(1, 2, 1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.AccountID != 1 || len(order.Tickets) != 2 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.Tickets[0].Type != domain.TicketAdult || order.Tickets[0].Quantity != 2 {
		t.Fatalf("unexpected first request: %+v", order.Tickets[0])
	}
}

func TestValidatePurchaseFromJSON_BrokenJSON(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	_, err := ValidatePurchaseFromJSON(ctx, validator, []byte(`{"account_id":`))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got %v", err)
	}
}

func TestValidatePurchaseFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	raw := `{"account_id":1,"tickets":[],"discount":5}`
	_, err := ValidatePurchaseFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error for unknown field, got %v", err)
	}
}

func TestValidatePurchaseFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	raw := purchaseJSON(1, 1, 0) + `{"account_id":2}`
	_, err := ValidatePurchaseFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestValidatePurchaseFromJSON_RuleViolation(t *testing.T) {
	ctx := context.Background()
	validator := NewPurchaseValidator()

	raw := `{"account_id":1,"tickets":[{"ticket_type":"CHILD","quantity":1}]}`
	_, err := ValidatePurchaseFromJSON(ctx, validator, []byte(raw))
	if !errors.Is(err, domain.ErrMissingAdultTicket) {
		t.Fatalf("want ErrMissingAdultTicket, got %v", err)
	}
}
