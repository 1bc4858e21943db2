package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dca"
	md "github.com/nao1215/markdown"
)

// TrajectoryMarkdown renders the tail of a portfolio trajectory as a table
// of (date, shares, invested, value). A non-positive tail renders the whole
// trajectory.
func TrajectoryMarkdown(p *dca.PortfolioSeries, tail int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Portfolio Trajectory", p.Symbol()))

	start := 0
	if tail > 0 && p.Len() > tail {
		start = p.Len() - tail
		doc.PlainText(fmt.Sprintf("Last %d of %d trading dates.", tail, p.Len()))
	}

	rows := make([][]string, 0, p.Len()-start)
	for i := start; i < p.Len(); i++ {
		pt := p.At(i)
		rows = append(rows, []string{
			pt.Date.String(),
			pt.Shares.StringFixed(4),
			pt.Invested.String(),
			pt.Value.String(),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Date", "Shares", "Invested", "Value"},
		Rows:   rows,
	})

	return doc.String()
}

// AnomaliesMarkdown renders the scheduling anomalies of an accumulation.
// It renders an empty string when there is nothing to report.
func AnomaliesMarkdown(anomalies []dca.ScheduleAnomaly) string {
	if len(anomalies) == 0 {
		return ""
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Skipped Contributions")
	doc.PlainText("These scheduled contributions had no trading date in the resolution window and were excluded from the totals.")

	rows := make([][]string, 0, len(anomalies))
	for _, a := range anomalies {
		rows = append(rows, []string{a.Scheduled.String(), a.Amount.String(), a.Reason})
	}

	doc.Table(md.TableSet{
		Header: []string{"Scheduled", "Amount", "Reason"},
		Rows:   rows,
	})

	return doc.String()
}
