// Package dca computes and compares investment-growth trajectories for a
// single security under different contribution strategies: a one-time
// lump-sum investment, a recurring monthly contribution plan (dollar-cost
// averaging), or both combined.
//
// The core pipeline is:
//   - A market data provider returns a PriceSeries for a symbol and range.
//   - A contribution policy (LumpSumOnly, MonthlyOnly, Combined) generates a
//     Schedule of calendar dates and amounts.
//   - Accumulate walks the price series in date order, resolves each
//     scheduled contribution to an actual trading date, converts it into
//     shares at that date's closing price, and produces a forward-filled
//     PortfolioSeries of (shares, invested, value).
//   - Summarize derives performance statistics (total and annualized return,
//     volatility, Sharpe ratio) from the portfolio series.
//
// Contributions whose scheduled date cannot be matched to a trading date
// within the resolution window are reported as ScheduleAnomaly values and
// excluded from the totals; they are never silently dropped or carried over
// to a later period.
//
// This package serves as the foundational logic for the `dcas` command-line
// tool.
package dca
