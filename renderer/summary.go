// Package renderer assembles the markdown reports displayed by the CLI:
// performance summaries, strategy comparisons, portfolio trajectories and
// price history tables. It consumes plain data from the dca package and has
// no knowledge of how it was computed.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dca"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the performance summary of one strategy.
func SummaryMarkdown(s *dca.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("%s Performance", s.Symbol)
	if s.Strategy != "" {
		title = fmt.Sprintf("%s Performance, %s", s.Symbol, s.Strategy)
	}
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("From %s to %s.", s.Range.From, s.Range.To))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Invested", s.TotalInvested.String()},
			{"Final Value", s.FinalValue.String()},
			{"Total Gain", s.TotalGain.SignedString()},
			{"Total Return", s.TotalReturn.SignedString()},
			{"Annualized Return", s.AnnualizedReturn.SignedString()},
			{"Volatility (ann.)", metricPercent(s.Volatility)},
			{"Sharpe Ratio", s.Sharpe.String()},
		},
	})

	return doc.String()
}

// metricPercent formats a Metric holding a percentage, keeping the explicit
// "n/a" of undefined metrics.
func metricPercent(m dca.Metric) string {
	v, ok := m.Value()
	if !ok {
		return m.String()
	}
	return dca.Percent(v).String()
}
