package crm

import "time"

func SetClock(c CRM, now func() time.Time) {
	c.(*crm).now = now
}

func SetRand(c CRM, r func() float64) {
	c.(*crm).rand = r
}
