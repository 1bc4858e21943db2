package dca

import (
	"math"
	"testing"
	"time"
)

// threeMonths is a tiny but fully worked trajectory: a $1,000 lump plus $100
// monthly into a security going 100 -> 110 -> 121.
func threeMonths(t *testing.T) (*PriceSeries, Schedule) {
	t.Helper()
	series := testSeries(t, "TEST",
		PricePoint{Date: NewDate(2024, time.January, 2), Close: 100},
		PricePoint{Date: NewDate(2024, time.February, 1), Close: 110},
		PricePoint{Date: NewDate(2024, time.March, 1), Close: 121},
	)
	schedule, err := Combined(NewDate(2024, time.January, 2), USD(1000), USD(100), NewDate(2024, time.March, 1))
	if err != nil {
		t.Fatal(err)
	}
	return series, schedule
}

func TestAccumulateCombined(t *testing.T) {
	series, schedule := threeMonths(t)

	portfolio, anomalies, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(anomalies) != 0 {
		t.Fatalf("anomalies = %v, want none", anomalies)
	}
	if portfolio.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", portfolio.Len())
	}

	tests := []struct {
		date     Date
		shares   float64
		invested Money
		value    float64
	}{
		// Jan 2: the monthly due Jan 1 resolves forward and merges with the
		// lump into one $1,100 purchase at 100.
		{NewDate(2024, time.January, 2), 11, USD(1100), 1100},
		{NewDate(2024, time.February, 1), 11.909090, USD(1200), 1310},
		{NewDate(2024, time.March, 1), 12.735537, USD(1300), 1541},
	}

	for i, tt := range tests {
		p := portfolio.At(i)
		if p.Date != tt.date {
			t.Errorf("point %d date = %v, want %v", i, p.Date, tt.date)
		}
		if math.Abs(p.Shares.AsFloat()-tt.shares) > 1e-4 {
			t.Errorf("%v shares = %v, want %v", tt.date, p.Shares, tt.shares)
		}
		if !p.Invested.Equal(tt.invested) {
			t.Errorf("%v invested = %s, want %s", tt.date, p.Invested, tt.invested)
		}
		if math.Abs(p.Value.AsFloat()-tt.value) > 0.01 {
			t.Errorf("%v value = %s, want %v", tt.date, p.Value, tt.value)
		}
	}
}

func TestAccumulateMonotonic(t *testing.T) {
	series, schedule := threeMonths(t)
	portfolio, _, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}

	var prev PortfolioPoint
	for i := 0; i < portfolio.Len(); i++ {
		p := portfolio.At(i)
		if i > 0 {
			if p.Shares.LessThan(prev.Shares) {
				t.Errorf("shares decreased on %v: %s < %s", p.Date, p.Shares, prev.Shares)
			}
			if !prev.Date.Before(p.Date) {
				t.Errorf("dates out of order: %v then %v", prev.Date, p.Date)
			}
		}
		prev = p
	}
}

func TestAccumulateConservation(t *testing.T) {
	// Invested capital on the last date equals the schedule total when every
	// contribution resolves.
	series, schedule := threeMonths(t)
	portfolio, anomalies, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(anomalies) != 0 {
		t.Fatalf("anomalies = %v, want none", anomalies)
	}
	if !portfolio.Last().Invested.Equal(schedule.Total()) {
		t.Errorf("invested = %s, want schedule total %s", portfolio.Last().Invested, schedule.Total())
	}
}

func TestAccumulateIdempotent(t *testing.T) {
	series, schedule := threeMonths(t)

	a, _, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}

	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		pa, pb := a.At(i), b.At(i)
		if pa.Date != pb.Date || !pa.Shares.Equal(pb.Shares) ||
			!pa.Invested.Equal(pb.Invested) || !pa.Value.Equal(pb.Value) {
			t.Errorf("point %d differs between runs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestAccumulateAnomaly(t *testing.T) {
	// The February contribution is due Feb 1 but the series jumps from
	// Jan 3 to Mar 1, beyond the resolution window. It must be reported
	// and excluded, not deferred to March.
	series := testSeries(t, "TEST",
		PricePoint{Date: NewDate(2024, time.January, 2), Close: 100},
		PricePoint{Date: NewDate(2024, time.January, 3), Close: 101},
		PricePoint{Date: NewDate(2024, time.March, 1), Close: 121},
	)
	schedule, err := MonthlyOnly(NewDate(2024, time.January, 2), USD(100), NewDate(2024, time.March, 1))
	if err != nil {
		t.Fatal(err)
	}

	portfolio, anomalies, err := Accumulate(series, schedule, 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(anomalies) != 1 {
		t.Fatalf("anomalies = %v, want exactly one", anomalies)
	}
	if anomalies[0].Scheduled != NewDate(2024, time.February, 1) {
		t.Errorf("anomaly scheduled = %v, want 2024-02-01", anomalies[0].Scheduled)
	}
	if !anomalies[0].Amount.Equal(USD(100)) {
		t.Errorf("anomaly amount = %s, want $100.00", anomalies[0].Amount)
	}
	// January and March contributions went through, February did not.
	if !portfolio.Last().Invested.Equal(USD(200)) {
		t.Errorf("invested = %s, want $200.00", portfolio.Last().Invested)
	}
}

func TestAccumulateAllAnomalous(t *testing.T) {
	series := testSeries(t, "TEST",
		PricePoint{Date: NewDate(2024, time.June, 3), Close: 100},
	)
	schedule, err := LumpSumOnly(NewDate(2024, time.January, 2), USD(1000))
	if err != nil {
		t.Fatal(err)
	}

	portfolio, anomalies, err := Accumulate(series, schedule, 10)
	if err != nil {
		t.Fatal(err)
	}
	if portfolio.Len() != 0 {
		t.Errorf("Len() = %d, want 0", portfolio.Len())
	}
	if len(anomalies) != 1 {
		t.Errorf("anomalies = %v, want exactly one", anomalies)
	}
}

func TestAccumulateEmptySeries(t *testing.T) {
	schedule, _ := LumpSumOnly(NewDate(2024, time.January, 2), USD(1000))
	if _, _, err := Accumulate(&PriceSeries{}, schedule, 0); err == nil {
		t.Error("empty series should be rejected")
	}
}

func TestAccumulateStartsAtFirstContribution(t *testing.T) {
	// Trading dates before the first resolved contribution are not part of
	// the trajectory.
	series := testSeries(t, "TEST",
		PricePoint{Date: NewDate(2024, time.January, 2), Close: 100},
		PricePoint{Date: NewDate(2024, time.January, 3), Close: 101},
		PricePoint{Date: NewDate(2024, time.January, 4), Close: 102},
	)
	schedule, err := LumpSumOnly(NewDate(2024, time.January, 3), USD(1000))
	if err != nil {
		t.Fatal(err)
	}

	portfolio, _, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}
	if portfolio.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", portfolio.Len())
	}
	if portfolio.First().Date != NewDate(2024, time.January, 3) {
		t.Errorf("First().Date = %v, want 2024-01-03", portfolio.First().Date)
	}
}
