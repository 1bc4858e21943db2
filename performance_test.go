package dca

import (
	"math"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	series, schedule := threeMonths(t)
	portfolio, _, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Summarize(portfolio, DefaultRiskFreeRate)
	if err != nil {
		t.Fatal(err)
	}

	if s.Symbol != "TEST" {
		t.Errorf("Symbol = %q, want TEST", s.Symbol)
	}
	if s.Range.From != NewDate(2024, time.January, 2) || s.Range.To != NewDate(2024, time.March, 1) {
		t.Errorf("Range = %s, unexpected", s.Range)
	}
	if !s.TotalInvested.Equal(USD(1300)) {
		t.Errorf("TotalInvested = %s, want $1,300.00", s.TotalInvested)
	}
	if math.Abs(s.FinalValue.AsFloat()-1541) > 0.01 {
		t.Errorf("FinalValue = %s, want about $1,541.00", s.FinalValue)
	}
	if math.Abs(s.TotalGain.AsFloat()-241) > 0.01 {
		t.Errorf("TotalGain = %s, want about $241.00", s.TotalGain)
	}
	// 1541 / 1300 - 1
	if math.Abs(float64(s.TotalReturn)-18.54) > 0.01 {
		t.Errorf("TotalReturn = %s, want about 18.54%%", s.TotalReturn)
	}
	// (1541 / 1100)^(365/59) - 1
	want := 100 * (math.Pow(1541.0/1100, 365.0/59) - 1)
	if math.Abs(float64(s.AnnualizedReturn)-want) > 0.1 {
		t.Errorf("AnnualizedReturn = %s, want about %.2f%%", s.AnnualizedReturn, want)
	}
	if !s.Volatility.Defined() {
		t.Error("Volatility should be defined with three observations")
	}
	if !s.Sharpe.Defined() {
		t.Error("Sharpe should be defined with non-zero volatility")
	}
}

func TestSummarizeConstantPrice(t *testing.T) {
	// A flat price gives zero daily returns: volatility is zero and the
	// Sharpe ratio has no defined value.
	series := testSeries(t, "FLAT",
		PricePoint{Date: NewDate(2024, time.January, 2), Close: 100},
		PricePoint{Date: NewDate(2024, time.January, 3), Close: 100},
		PricePoint{Date: NewDate(2024, time.January, 4), Close: 100},
	)
	schedule, err := LumpSumOnly(NewDate(2024, time.January, 2), USD(1000))
	if err != nil {
		t.Fatal(err)
	}
	portfolio, _, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Summarize(portfolio, DefaultRiskFreeRate)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := s.Volatility.Value(); !ok || v != 0 {
		t.Errorf("Volatility = %s, want 0.00%%", s.Volatility)
	}
	if s.Sharpe.Defined() {
		t.Errorf("Sharpe = %s, want n/a", s.Sharpe)
	}
	if s.Sharpe.String() != "n/a" {
		t.Errorf("Sharpe.String() = %q, want n/a", s.Sharpe.String())
	}
	if s.TotalReturn != 0 {
		t.Errorf("TotalReturn = %s, want 0.00%%", s.TotalReturn)
	}
}

func TestSummarizeSinglePoint(t *testing.T) {
	// One trading date: the span is zero days and there are not enough
	// observations for volatility.
	series := testSeries(t, "TEST",
		PricePoint{Date: NewDate(2024, time.January, 2), Close: 100},
	)
	schedule, err := LumpSumOnly(NewDate(2024, time.January, 2), USD(1000))
	if err != nil {
		t.Fatal(err)
	}
	portfolio, _, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Summarize(portfolio, DefaultRiskFreeRate)
	if err != nil {
		t.Fatal(err)
	}
	if s.AnnualizedReturn != 0 {
		t.Errorf("AnnualizedReturn = %s, want 0.00%%", s.AnnualizedReturn)
	}
	if s.Volatility.Defined() {
		t.Errorf("Volatility = %s, want n/a", s.Volatility)
	}
	if s.Sharpe.Defined() {
		t.Errorf("Sharpe = %s, want n/a", s.Sharpe)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(&PortfolioSeries{}, DefaultRiskFreeRate); err == nil {
		t.Error("empty trajectory should be rejected")
	}
}

func TestDailyReturns(t *testing.T) {
	series, schedule := threeMonths(t)
	portfolio, _, err := Accumulate(series, schedule, 0)
	if err != nil {
		t.Fatal(err)
	}

	returns := dailyReturns(portfolio)
	if len(returns) != 3 {
		t.Fatalf("len = %d, want 3", len(returns))
	}
	if returns[0] != 0 {
		t.Errorf("returns[0] = %v, want 0", returns[0])
	}
	// 1310 / 1100 - 1, the Feb contribution counts as growth of the holding.
	if math.Abs(returns[1]-(1310.0/1100-1)) > 1e-4 {
		t.Errorf("returns[1] = %v, want %v", returns[1], 1310.0/1100-1)
	}
}
