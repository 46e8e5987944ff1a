package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
)

// Проверка, что LRUReceiptCache удовлетворяет интерфейсу ReceiptCache.
var _ ports.ReceiptCache = (*LRUReceiptCache)(nil)

type entry struct {
	key       string
	receipt   *domain.Receipt
	expiresAt time.Time
}

// LRUReceiptCache — кэш чеков по ключу идемпотентности: LRU-вытеснение + TTL.
// Повторный запрос с тем же ключом получает сохранённый чек вместо повторной
// оплаты. TTL ограничивает окно повтора.
type LRUReceiptCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUReceiptCache — конструктор; capacity < 1 поднимается до 1.
func NewLRUReceiptCache(capacity int, ttl time.Duration) *LRUReceiptCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUReceiptCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — вернуть чек по ключу; (receipt, true) при попадании, (nil, false)
// при промахе или истечении TTL. Попадание продлевает TTL.
func (c *LRUReceiptCache) Get(_ context.Context, key string) (*domain.Receipt, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneReceipt(ent.receipt), true
}

// Set — сохранить/обновить чек в кэше. Пустой ключ и nil-чек игнорируются.
func (c *LRUReceiptCache) Set(_ context.Context, key string, receipt *domain.Receipt) error {
	if key == "" || receipt == nil {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.receipt = cloneReceipt(receipt)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		receipt:   cloneReceipt(receipt),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}
