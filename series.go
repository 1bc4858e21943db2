package dca

import (
	"errors"
	"fmt"
	"iter"
)

// ErrEmptySeries reports a price series with zero points. Accumulation and
// analysis cannot proceed on it; the caller typically shows "no data".
var ErrEmptySeries = errors.New("price series is empty")

// InvalidPriceError reports a non-positive closing price in a series, with
// the offending date.
type InvalidPriceError struct {
	Date  Date
	Close float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %v on %s: closing price must be positive", e.Close, e.Date)
}

// PricePoint is one observed trading session: a date, a positive closing
// price and an optional traded volume.
type PricePoint struct {
	Date   Date    `json:"date"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume,omitempty"`
}

// PriceSeries is an ordered sequence of PricePoint for one symbol over one
// date range. Dates are strictly increasing and unique. It is constructed
// once per request and read-only thereafter.
type PriceSeries struct {
	symbol string
	points []PricePoint
}

// NewPriceSeries builds a validated series from raw points. Points are
// sorted by date; duplicate dates collapse to the last observation (the most
// recent data wins, as in any price refresh). A non-positive close is
// rejected with an InvalidPriceError.
func NewPriceSeries(symbol string, points []PricePoint) (*PriceSeries, error) {
	if len(points) == 0 {
		return nil, ErrEmptySeries
	}

	var prices History[float64]
	volumes := make(map[Date]int64, len(points))
	for _, p := range points {
		if p.Close <= 0 {
			return nil, &InvalidPriceError{Date: p.Date, Close: p.Close}
		}
		if p.Volume < 0 {
			return nil, fmt.Errorf("invalid volume %d on %s", p.Volume, p.Date)
		}
		prices.Append(p.Date, p.Close)
		volumes[p.Date] = p.Volume
	}

	s := &PriceSeries{symbol: symbol, points: make([]PricePoint, 0, prices.Len())}
	for on, close := range prices.Values() {
		s.points = append(s.points, PricePoint{Date: on, Close: close, Volume: volumes[on]})
	}
	return s, nil
}

// Symbol returns the security symbol this series belongs to.
func (s *PriceSeries) Symbol() string { return s.symbol }

// Len returns the number of trading sessions in the series.
func (s *PriceSeries) Len() int { return len(s.points) }

// Points returns an iterator over the points in chronological order.
func (s *PriceSeries) Points() iter.Seq[PricePoint] {
	return func(yield func(PricePoint) bool) {
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
}

// At returns the i-th point in chronological order.
func (s *PriceSeries) At(i int) PricePoint { return s.points[i] }

// First returns the earliest point of the series.
func (s *PriceSeries) First() PricePoint { return s.points[0] }

// Last returns the latest point of the series.
func (s *PriceSeries) Last() PricePoint { return s.points[len(s.points)-1] }

// Range returns the date range covered by the series.
func (s *PriceSeries) Range() Range {
	return Range{From: s.First().Date, To: s.Last().Date}
}

// MovingAverage returns the simple moving average of the closing prices over
// the given window of trading sessions. The first window-1 dates have no
// value.
func (s *PriceSeries) MovingAverage(window int) *History[float64] {
	ma := new(History[float64])
	if window <= 0 || window > len(s.points) {
		return ma
	}
	var sum float64
	for i, p := range s.points {
		sum += p.Close
		if i >= window {
			sum -= s.points[i-window].Close
		}
		if i >= window-1 {
			ma.Append(p.Date, sum/float64(window))
		}
	}
	return ma
}
