package feed

import (
	"discovery/pkg/storage"
	"time"
)

// NewWithClock is New with a fixed clock.
func NewWithClock(st storage.AllStorage, options ServiceOptions, now func() time.Time) Ranker {
	s := New(st, options).(*service)
	s.now = now

	return s
}
