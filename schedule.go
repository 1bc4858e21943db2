package dca

import (
	"fmt"
	"slices"
)

// Schedule maps a scheduled calendar date to the total contribution amount
// due on that date. Dates are calendar dates, not necessarily trading dates;
// resolution to trading dates is deferred to the accumulation engine, so
// policy generation is independent of market holidays.
//
// Multiple logical contributions on the same date collapse by summation, e.g.
// an initial lump sum and a monthly contribution falling on the start date.
type Schedule map[Date]Money

// add merges an amount into the schedule, summing with any existing amount
// on that date.
func (s Schedule) add(on Date, amount Money) {
	s[on] = s[on].Add(amount)
}

// Dates returns the scheduled dates in ascending order.
func (s Schedule) Dates() []Date {
	dates := make([]Date, 0, len(s))
	for on := range s {
		dates = append(dates, on)
	}
	slices.SortFunc(dates, Date.Compare)
	return dates
}

// Total returns the sum of all scheduled amounts.
func (s Schedule) Total() Money {
	var total Money
	for _, amount := range s {
		total = total.Add(amount)
	}
	return total
}

// LumpSumOnly returns a schedule with a single contribution on the given date.
func LumpSumOnly(on Date, amount Money) (Schedule, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("lump sum amount must be positive, got %s", amount)
	}
	return Schedule{on: amount}, nil
}

// MonthlyOnly returns a schedule with one contribution per calendar month,
// from the month containing start through the month containing end. The
// nominal scheduled date is the first of each month, start month included;
// matching it to an actual trading date is the engine's job.
func MonthlyOnly(start Date, amount Money, end Date) (Schedule, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("monthly amount must be positive, got %s", amount)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("schedule end %s is before start %s", end, start)
	}
	s := Schedule{}
	last := end.StartOfMonth()
	for on := start.StartOfMonth(); !on.After(last); on = on.AddMonth(1) {
		s.add(on, amount)
	}
	return s, nil
}

// Combined returns a schedule with an initial lump sum on the start date plus
// one monthly contribution per calendar month through end. A zero monthly
// amount degenerates to LumpSumOnly. Amounts landing on the same calendar
// date sum rather than overwrite.
func Combined(start Date, lump, monthly Money, end Date) (Schedule, error) {
	if monthly.IsZero() {
		return LumpSumOnly(start, lump)
	}
	s, err := MonthlyOnly(start, monthly, end)
	if err != nil {
		return nil, err
	}
	if !lump.IsPositive() {
		return nil, fmt.Errorf("lump sum amount must be positive, got %s", lump)
	}
	s.add(start, lump)
	return s, nil
}
