package proximity

import (
	"discovery/pkg/storage"
	"time"
)

// NewWithClock is New with a fixed clock.
func NewWithClock(st storage.CatalogStorage, options Options, now func() time.Time) Finder {
	f := New(st, options).(*finder)
	f.now = now

	return f
}

// CacheLen reports the number of cached entries of a Finder built by New.
func CacheLen(f Finder) int {
	return f.(*finder).cache.len()
}
