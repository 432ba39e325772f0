package render

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host's zoneinfo.

	lru "github.com/hashicorp/golang-lru/v2"
)

// ZoneCache memoizes IANA zone lookups. time.LoadLocation reads the zoneinfo
// database on every call.
type ZoneCache struct {
	cache *lru.Cache[string, *time.Location]
	onHit func(hit bool)
}

// NewZoneCache creates a cache holding at most size zones. onHit, if non-nil,
// observes every lookup of a non-empty name.
func NewZoneCache(size int, onHit func(hit bool)) (*ZoneCache, error) {
	cache, err := lru.New[string, *time.Location](size)
	if err != nil {
		return nil, fmt.Errorf("create zone cache: %w", err)
	}
	return &ZoneCache{cache: cache, onHit: onHit}, nil
}

// Lookup resolves an IANA zone name. An empty name is UTC. Unknown names return
// UTC together with the load error so callers can log it.
func (z *ZoneCache) Lookup(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	if loc, ok := z.cache.Get(name); ok {
		z.observe(true)
		return loc, nil
	}
	z.observe(false)

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Errorf("load zone %q: %w", name, err)
	}
	z.cache.Add(name, loc)
	return loc, nil
}

// Len reports the number of cached zones.
func (z *ZoneCache) Len() int {
	return z.cache.Len()
}

func (z *ZoneCache) observe(hit bool) {
	if z.onHit != nil {
		z.onHit(hit)
	}
}
