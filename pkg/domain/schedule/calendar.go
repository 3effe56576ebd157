// Package schedule computes working days remaining until a delivery date
// and maps calendar position onto deadline status levels.
package schedule

import "time"

// fixedHoliday is a public holiday that falls on the same date every year.
type fixedHoliday struct {
	Month time.Month
	Day   int
}

// National public holidays by jurisdiction code. Only fixed-date holidays
// are listed; movable holidays shift yearly and come from config overrides.
var fixedHolidays = map[string][]fixedHoliday{
	"AR": {
		{time.January, 1},   // Año Nuevo
		{time.March, 24},    // Día de la Memoria
		{time.April, 2},     // Malvinas
		{time.May, 1},       // Día del Trabajador
		{time.May, 25},      // Revolución de Mayo
		{time.June, 20},     // Paso a la Inmortalidad de Belgrano
		{time.July, 9},      // Día de la Independencia
		{time.December, 8},  // Inmaculada Concepción
		{time.December, 25}, // Navidad
	},
	"ES": {
		{time.January, 1},
		{time.January, 6},
		{time.May, 1},
		{time.August, 15},
		{time.October, 12},
		{time.November, 1},
		{time.December, 6},
		{time.December, 8},
		{time.December, 25},
	},
}

// HolidayCalendar answers whether a given day is a public holiday for one
// jurisdiction. It is seeded once and never recomputed.
type HolidayCalendar struct {
	jurisdiction string
	fixed        map[[2]int]struct{} // month, day
	extra        map[string]struct{} // yyyy-mm-dd overrides
}

// NewHolidayCalendar seeds a calendar for the jurisdiction code (e.g. "AR").
// Unknown codes yield a calendar with no holidays.
func NewHolidayCalendar(jurisdiction string) *HolidayCalendar {
	c := &HolidayCalendar{
		jurisdiction: jurisdiction,
		fixed:        make(map[[2]int]struct{}),
		extra:        make(map[string]struct{}),
	}
	for _, h := range fixedHolidays[jurisdiction] {
		c.fixed[[2]int{int(h.Month), h.Day}] = struct{}{}
	}
	return c
}

// Jurisdiction returns the seeded jurisdiction code.
func (c *HolidayCalendar) Jurisdiction() string { return c.jurisdiction }

// AddHoliday registers an extra, date-specific holiday (movable feasts,
// bridge days) on top of the fixed national set.
func (c *HolidayCalendar) AddHoliday(t time.Time) {
	c.extra[t.Format("2006-01-02")] = struct{}{}
}

// IsHoliday reports whether the given day is a public holiday.
func (c *HolidayCalendar) IsHoliday(t time.Time) bool {
	if _, ok := c.fixed[[2]int{int(t.Month()), t.Day()}]; ok {
		return true
	}
	_, ok := c.extra[t.Format("2006-01-02")]
	return ok
}

// Calculator counts business days against a holiday calendar. The clock is
// injectable so date arithmetic stays deterministic under test.
type Calculator struct {
	calendar *HolidayCalendar
	now      func() time.Time
}

// NewCalculator builds a calculator. A nil now function means time.Now.
func NewCalculator(calendar *HolidayCalendar, now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{calendar: calendar, now: now}
}

// Today returns the calculator's current date truncated to midnight.
func (c *Calculator) Today() time.Time {
	return midnight(c.now())
}

// IsBusinessDay reports whether the day is neither a weekend nor a holiday.
func (c *Calculator) IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !c.calendar.IsHoliday(t)
}

// DaysUntilDelivery returns the number of business days from today
// (exclusive) to the due date (inclusive). A past or same-day due date
// yields 0; the result is never negative.
func (c *Calculator) DaysUntilDelivery(due time.Time) int {
	today := midnight(c.now())
	target := midnight(due)

	if !target.After(today) {
		return 0
	}

	days := 0
	for d := today.AddDate(0, 0, 1); !d.After(target); d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			days++
		}
	}
	return days
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
