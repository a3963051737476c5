package outreach

import "time"

func (g *Guard) SetClock(now func() time.Time) {
	g.now = now
}
