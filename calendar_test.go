package dca

import (
	"testing"
	"time"
)

// testSeries builds a series with the given (date, close) pairs, failing the
// test on invalid input.
func testSeries(t *testing.T, symbol string, points ...PricePoint) *PriceSeries {
	t.Helper()
	s, err := NewPriceSeries(symbol, points)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	return s
}

func TestCalendarResolve(t *testing.T) {
	// 2024-01-01 is a holiday: the series opens on the 2nd.
	s := testSeries(t, "TEST",
		PricePoint{Date: NewDate(2024, time.January, 2), Close: 100},
		PricePoint{Date: NewDate(2024, time.January, 3), Close: 101},
		PricePoint{Date: NewDate(2024, time.February, 1), Close: 110},
	)
	c := NewCalendar(s)

	tests := []struct {
		name   string
		target Date
		window int
		want   Date
		ok     bool
	}{
		{"holiday resolves forward", NewDate(2024, time.January, 1), 9, NewDate(2024, time.January, 2), true},
		{"trading date resolves to itself", NewDate(2024, time.January, 2), 9, NewDate(2024, time.January, 2), true},
		{"gap longer than window", NewDate(2024, time.January, 10), 9, Date{}, false},
		{"gap within window", NewDate(2024, time.January, 25), 9, NewDate(2024, time.February, 1), true},
		{"past the series end", NewDate(2024, time.March, 1), 9, Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Resolve(tt.target, tt.window)
			if ok != tt.ok {
				t.Fatalf("Resolve(%v, %d) ok = %v, want %v", tt.target, tt.window, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%v, %d) = %v, want %v", tt.target, tt.window, got, tt.want)
			}
		})
	}
}

func TestCalendarTradingDates(t *testing.T) {
	s := testSeries(t, "TEST",
		PricePoint{Date: NewDate(2024, time.January, 2), Close: 100},
		PricePoint{Date: NewDate(2024, time.January, 3), Close: 101},
	)
	c := NewCalendar(s)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if !c.Contains(NewDate(2024, time.January, 2)) {
		t.Error("Contains(2024-01-02) = false, want true")
	}
	if c.Contains(NewDate(2024, time.January, 1)) {
		t.Error("Contains(2024-01-01) = true, want false")
	}
}
