package parser

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hava-db/routeguard/routing"
	"github.com/hava-db/routeguard/telemetry"
)

// Cache memoizes parsed commands keyed by XXH64 of the statement text.
// Commands are immutable, so a shared cache is safe for concurrent
// sources.
type Cache struct {
	entries *lru.Cache[uint64, routing.Command]
}

func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[uint64, routing.Command](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

func (c *Cache) get(stmt string) (routing.Command, bool) {
	cmd, ok := c.entries.Get(xxhash.Sum64String(stmt))
	if ok {
		telemetry.ClassifierCacheEventsTotal.With("hit").Inc()
	} else {
		telemetry.ClassifierCacheEventsTotal.With("miss").Inc()
	}
	return cmd, ok
}

func (c *Cache) put(stmt string, cmd routing.Command) {
	c.entries.Add(xxhash.Sum64String(stmt), cmd)
}

// Len returns the number of cached commands.
func (c *Cache) Len() int {
	return c.entries.Len()
}
