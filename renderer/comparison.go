package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dca"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders several strategy summaries side by side, one
// row per strategy.
func ComparisonMarkdown(summaries []*dca.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(summaries) == 0 {
		doc.PlainText("Nothing to compare.")
		return doc.String()
	}

	doc.H1(fmt.Sprintf("%s Strategy Comparison", summaries[0].Symbol))
	doc.PlainText(fmt.Sprintf("From %s to %s.", summaries[0].Range.From, summaries[0].Range.To))

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Strategy,
			s.TotalInvested.String(),
			s.FinalValue.String(),
			s.TotalGain.SignedString(),
			s.TotalReturn.SignedString(),
			s.AnnualizedReturn.SignedString(),
			metricPercent(s.Volatility),
			s.Sharpe.String(),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Strategy", "Invested", "Value", "Gain", "Return", "Annualized", "Volatility", "Sharpe"},
		Rows:   rows,
	})

	return doc.String()
}
