package dca

import (
	"fmt"
	"iter"
)

// PortfolioPoint is the portfolio state at the end of one trading date:
// cumulative shares held, cumulative capital contributed, and mark-to-market
// value (shares times that date's close).
type PortfolioPoint struct {
	Date     Date
	Shares   Quantity
	Invested Money
	Value    Money
}

func (p PortfolioPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Append("shares", p.Shares)
	w.Append("invested", p.Invested)
	w.Append("value", p.Value)
	return w.MarshalJSON()
}

// PortfolioSeries is the forward-filled portfolio trajectory, index-aligned
// with the price series it was computed from, restricted to dates on or
// after the first resolved contribution. Shares and invested are
// non-decreasing in date order.
type PortfolioSeries struct {
	symbol string
	points []PortfolioPoint
}

// Symbol returns the security symbol the trajectory belongs to.
func (p *PortfolioSeries) Symbol() string { return p.symbol }

// Len returns the number of trading dates in the trajectory.
func (p *PortfolioSeries) Len() int { return len(p.points) }

// At returns the i-th point in chronological order.
func (p *PortfolioSeries) At(i int) PortfolioPoint { return p.points[i] }

// First returns the earliest point of the trajectory.
func (p *PortfolioSeries) First() PortfolioPoint { return p.points[0] }

// Last returns the latest point of the trajectory.
func (p *PortfolioSeries) Last() PortfolioPoint { return p.points[len(p.points)-1] }

// Points returns an iterator over the points in chronological order.
func (p *PortfolioSeries) Points() iter.Seq[PortfolioPoint] {
	return func(yield func(PortfolioPoint) bool) {
		for _, pt := range p.points {
			if !yield(pt) {
				return
			}
		}
	}
}

// ScheduleAnomaly records a scheduled contribution that could not be
// resolved to a trading date within the resolution window. The amount is
// excluded from the totals; it is not retried on a later date, which would
// risk double-counting against another schedule entry.
type ScheduleAnomaly struct {
	Scheduled Date
	Amount    Money
	Reason    string
}

func (a ScheduleAnomaly) String() string {
	return fmt.Sprintf("%s %s: %s", a.Scheduled, a.Amount, a.Reason)
}

// Accumulate walks the price series in strict date order, applies the due
// contributions, converts them into shares at that date's closing price and
// maintains running totals forward-filled across all remaining dates.
//
// Each scheduled entry is first resolved to a trading date within window
// calendar days (DefaultResolveWindow when window is zero or negative).
// Entries resolving to the same trading date sum, so a lump sum and a
// monthly contribution landing on the same day buy shares in a single
// purchase at a single price. Unresolvable entries are returned as
// anomalies alongside the completed trajectory.
func Accumulate(series *PriceSeries, schedule Schedule, window int) (*PortfolioSeries, []ScheduleAnomaly, error) {
	if series == nil || series.Len() == 0 {
		return nil, nil, ErrEmptySeries
	}
	if window <= 0 {
		window = DefaultResolveWindow
	}

	calendar := NewCalendar(series)

	// Resolve every scheduled entry to a trading date, merging same-day dues.
	due := make(map[Date]Money, len(schedule))
	var anomalies []ScheduleAnomaly
	var first Date
	for _, scheduled := range schedule.Dates() {
		amount := schedule[scheduled]
		day, ok := calendar.Resolve(scheduled, window)
		if !ok {
			anomalies = append(anomalies, ScheduleAnomaly{
				Scheduled: scheduled,
				Amount:    amount,
				Reason:    fmt.Sprintf("no trading date within %d days", window),
			})
			continue
		}
		due[day] = due[day].Add(amount)
		if first.IsZero() || day.Before(first) {
			first = day
		}
	}

	portfolio := &PortfolioSeries{symbol: series.Symbol()}
	if len(due) == 0 {
		// Every contribution was anomalous, there is nothing to track.
		return portfolio, anomalies, nil
	}

	currency := schedule.Total().Currency()

	var shares Quantity
	var invested Money
	for p := range series.Points() {
		if p.Date.Before(first) {
			continue
		}
		price := M(p.Close, currency)
		if amount, ok := due[p.Date]; ok && amount.IsPositive() {
			shares = shares.Add(amount.DivPrice(price))
			invested = invested.Add(amount)
		}
		portfolio.points = append(portfolio.points, PortfolioPoint{
			Date:     p.Date,
			Shares:   shares,
			Invested: invested,
			Value:    price.Mul(shares),
		})
	}
	return portfolio, anomalies, nil
}
