package dca

import "slices"

// DefaultResolveWindow is the number of calendar days after a scheduled date
// within which a substitute trading date is searched. Ten days is enough to
// bridge any weekend-plus-holiday run at the start of a month.
const DefaultResolveWindow = 10

// Calendar exposes the ordered set of actual trading dates of a price series
// and resolves arbitrary calendar dates to the nearest applicable trading
// date. Monthly contribution dates (typically the 1st) frequently fall on a
// weekend or holiday; the resolution picks a deterministic substitute without
// dropping or double-counting the contribution.
type Calendar struct {
	days []Date
}

// NewCalendar builds the trading calendar view of a price series.
func NewCalendar(s *PriceSeries) *Calendar {
	days := make([]Date, 0, s.Len())
	for p := range s.Points() {
		days = append(days, p.Date)
	}
	return &Calendar{days: days}
}

// TradingDates returns the distinct trading dates, in chronological order.
// The returned slice is shared; callers must not modify it.
func (c *Calendar) TradingDates() []Date { return c.days }

// Len returns the number of trading dates.
func (c *Calendar) Len() int { return len(c.days) }

// Contains reports whether the given date is a trading date.
func (c *Calendar) Contains(day Date) bool {
	_, found := slices.BinarySearchFunc(c.days, day, Date.Compare)
	return found
}

// Resolve returns the first trading date on or after target, provided it
// falls within window calendar days of target. It returns false when no
// trading date exists in that window, signaling that no trading day is
// available for this contribution.
func (c *Calendar) Resolve(target Date, window int) (Date, bool) {
	i, _ := slices.BinarySearchFunc(c.days, target, Date.Compare)
	if i >= len(c.days) {
		return Date{}, false
	}
	day := c.days[i]
	if day.DaysSince(target) > window {
		return Date{}, false
	}
	return day, true
}
