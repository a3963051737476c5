package scanner

import "time"

// SetClock replaces the clock of a Scanner created by New.
func SetClock(s Scanner, now func() time.Time) {
	s.(*scanner).now = now
}
