package memory_test

import (
	"context"
	"testing"
	"time"

	memorycache "github.com/Gunvolt24/cinema_tickets/internal/cache/memory"
	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

func receipt(accountID int64, total int) *domain.Receipt {
	return &domain.Receipt{
		AccountID:     accountID,
		TotalCost:     total,
		SeatsReserved: 1,
		Counts:        domain.TicketCounts{Adults: 1},
	}
}

func TestReceiptCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := memorycache.NewLRUReceiptCache(10, time.Minute)

	if err := c.Set(ctx, "key-1", receipt(1, 20)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := c.Get(ctx, "key-1")
	if !ok || got == nil || got.TotalCost != 20 {
		t.Fatalf("expected hit with total=20, got ok=%v receipt=%+v", ok, got)
	}

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestReceiptCache_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := memorycache.NewLRUReceiptCache(10, time.Minute)

	original := receipt(1, 20)
	_ = c.Set(ctx, "key-1", original)

	// мутируем и оригинал, и полученную копию
	original.TotalCost = 999
	first, _ := c.Get(ctx, "key-1")
	first.TotalCost = 777

	second, _ := c.Get(ctx, "key-1")
	if second.TotalCost != 20 {
		t.Fatalf("cache must hold its own copy, got %+v", second)
	}
}

func TestReceiptCache_EmptyKeyAndNilIgnored(t *testing.T) {
	ctx := context.Background()
	c := memorycache.NewLRUReceiptCache(10, time.Minute)

	if err := c.Set(ctx, "", receipt(1, 20)); err != nil {
		t.Fatalf("Set with empty key: %v", err)
	}
	if err := c.Set(ctx, "key-1", nil); err != nil {
		t.Fatalf("Set with nil receipt: %v", err)
	}
	if _, ok := c.Get(ctx, "key-1"); ok {
		t.Fatal("nil receipt must not be stored")
	}
}

func TestReceiptCache_EvictsLRU(t *testing.T) {
	ctx := context.Background()
	c := memorycache.NewLRUReceiptCache(2, time.Minute)

	_ = c.Set(ctx, "a", receipt(1, 10))
	_ = c.Set(ctx, "b", receipt(2, 20))

	// касание "a" делает "b" наименее используемым
	if _, ok := c.Get(ctx, "a"); !ok {
		t.Fatal("expected hit for a")
	}

	_ = c.Set(ctx, "c", receipt(3, 30))

	if _, ok := c.Get(ctx, "b"); ok {
		t.Fatal("b must be evicted as LRU")
	}
	if _, ok := c.Get(ctx, "a"); !ok {
		t.Fatal("a must survive eviction")
	}
	if _, ok := c.Get(ctx, "c"); !ok {
		t.Fatal("c must be present")
	}
}

func TestReceiptCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := memorycache.NewLRUReceiptCache(10, 30*time.Millisecond)

	_ = c.Set(ctx, "key-1", receipt(1, 20))
	time.Sleep(60 * time.Millisecond)

	if _, ok := c.Get(ctx, "key-1"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestReceiptCache_ZeroTTL_NeverExpires(t *testing.T) {
	ctx := context.Background()
	c := memorycache.NewLRUReceiptCache(10, 0)

	_ = c.Set(ctx, "key-1", receipt(1, 20))
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get(ctx, "key-1"); !ok {
		t.Fatal("zero TTL must mean no expiry")
	}
}

func TestReceiptCache_UpdateExistingKey(t *testing.T) {
	ctx := context.Background()
	c := memorycache.NewLRUReceiptCache(10, time.Minute)

	_ = c.Set(ctx, "key-1", receipt(1, 20))
	_ = c.Set(ctx, "key-1", receipt(1, 50))

	got, ok := c.Get(ctx, "key-1")
	if !ok || got.TotalCost != 50 {
		t.Fatalf("expected updated receipt, got ok=%v receipt=%+v", ok, got)
	}
}
