package dca

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultRiskFreeRate is the annual risk-free rate used for the Sharpe ratio
// when the caller does not provide one.
const DefaultRiskFreeRate = 0.02

// tradingDaysPerYear annualizes daily return statistics.
const tradingDaysPerYear = 252

// Summary is the point-in-time performance overview of a portfolio
// trajectory. It is plain serializable data; the renderer displays it
// without depending on how it was computed.
type Summary struct {
	Symbol           string  `json:"symbol"`
	Strategy         string  `json:"strategy,omitempty"`
	Range            Range   `json:"range"`
	FinalValue       Money   `json:"finalValue"`
	TotalInvested    Money   `json:"totalInvested"`
	TotalGain        Money   `json:"totalGain"`
	TotalReturn      Percent `json:"totalReturnPct"`
	AnnualizedReturn Percent `json:"annualizedReturnPct"`
	Volatility       Metric  `json:"volatilityPct"`
	Sharpe           Metric  `json:"sharpeRatio"`
}

// dailyReturns computes the percent change of value between consecutive
// dates. The first element is 0, there is no prior value.
func dailyReturns(p *PortfolioSeries) []float64 {
	returns := make([]float64, p.Len())
	for i := 1; i < p.Len(); i++ {
		prev := p.At(i - 1).Value.AsFloat()
		if prev != 0 {
			returns[i] = p.At(i).Value.AsFloat()/prev - 1
		}
	}
	return returns
}

// Summarize derives the performance statistics of a portfolio trajectory.
//
//   - total return: final value over total invested, as a percentage; 0 when
//     nothing was invested.
//   - annualized return: (final value / initial contribution)^(365/days) - 1
//     over the span from the first contribution to the last date; 0 when the
//     span is zero days.
//   - volatility: sample standard deviation of the daily returns, annualized
//     by sqrt(252); undefined with fewer than two observations.
//   - Sharpe ratio: annualized return minus the risk-free rate, over the
//     volatility; undefined when volatility is zero.
//
// riskFree is an annual rate as a fraction, e.g. 0.02 for 2%.
func Summarize(p *PortfolioSeries, riskFree float64) (*Summary, error) {
	if p == nil || p.Len() == 0 {
		return nil, ErrEmptySeries
	}

	first, last := p.First(), p.Last()

	s := &Summary{
		Symbol:        p.Symbol(),
		Range:         Range{From: first.Date, To: last.Date},
		FinalValue:    last.Value,
		TotalInvested: last.Invested,
		TotalGain:     last.Value.Sub(last.Invested),
	}

	if !last.Invested.IsZero() {
		s.TotalReturn = Percent(100 * (last.Value.AsFloat()/last.Invested.AsFloat() - 1))
	}

	var annualized float64
	days := last.Date.DaysSince(first.Date)
	if days > 0 && first.Invested.IsPositive() {
		annualized = math.Pow(last.Value.AsFloat()/first.Invested.AsFloat(), 365/float64(days)) - 1
		s.AnnualizedReturn = Percent(100 * annualized)
	}

	returns := dailyReturns(p)
	if len(returns) < 2 {
		return s, nil
	}
	volatility := stat.StdDev(returns, nil) * math.Sqrt(tradingDaysPerYear)
	s.Volatility = DefinedMetric(100 * volatility)
	if volatility != 0 {
		s.Sharpe = DefinedMetric((annualized - riskFree) / volatility)
	}
	return s, nil
}
