package curve

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes built tables per (kind, order). Tables are immutable, so
// one table can back any number of consumers — ditherers, renderers —
// without rebuilding the Side²-point traversal each time.
//
// Cache is safe for concurrent use.
type Cache struct {
	store *gocache.Cache
}

// NewCache returns a Cache whose entries expire after ttl and are purged
// at 2·ttl intervals. ttl ≤ 0 keeps entries forever.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{store: gocache.New(gocache.NoExpiration, 0)}
	}

	return &Cache{store: gocache.New(ttl, 2*ttl)}
}

// Table returns the memoized table for (kind, order), building and
// storing it on a miss.
//
// Errors: ErrUnknownKind, ErrOrderTooSmall.
func (c *Cache) Table(kind Kind, order int) (*Table, error) {
	key := kind.String() + "/" + strconv.Itoa(order)
	if v, ok := c.store.Get(key); ok {
		return v.(*Table), nil
	}

	t, err := New(kind, order)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, t, gocache.DefaultExpiration)

	return t, nil
}
