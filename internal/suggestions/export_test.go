package suggestions

import (
	"discovery/pkg/curator"
	"discovery/pkg/storage"
	"time"
)

// NewWithClock is New with a fixed clock.
func NewWithClock(st storage.AllStorage, cur curator.Curator, options Options, now func() time.Time) Suggester {
	s := New(st, cur, options).(*suggester)
	s.now = now

	return s
}
