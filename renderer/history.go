package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/dca"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the tail of a price history as a table of date,
// close and volume, with an optional simple moving average column when
// maWindow is positive.
func HistoryMarkdown(s *dca.PriceSeries, maWindow, tail int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Price History", s.Symbol()))
	doc.PlainText(fmt.Sprintf("From %s to %s, %d trading dates.", s.Range().From, s.Range().To, s.Len()))

	header := []string{"Date", "Close", "Volume"}
	var ma *dca.History[float64]
	if maWindow > 0 {
		ma = s.MovingAverage(maWindow)
		header = append(header, fmt.Sprintf("MA(%d)", maWindow))
	}

	start := 0
	if tail > 0 && s.Len() > tail {
		start = s.Len() - tail
	}

	rows := make([][]string, 0, s.Len()-start)
	for i := start; i < s.Len(); i++ {
		p := s.At(i)
		row := []string{
			p.Date.String(),
			strconv.FormatFloat(p.Close, 'f', 2, 64),
			strconv.FormatInt(p.Volume, 10),
		}
		if ma != nil {
			cell := "" // blank before the window is full
			if v, ok := ma.Get(p.Date); ok {
				cell = strconv.FormatFloat(v, 'f', 2, 64)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	doc.Table(md.TableSet{Header: header, Rows: rows})

	return doc.String()
}

// SearchMarkdown renders symbol directory lookup results.
func SearchMarkdown(query string, results []dca.SearchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Symbols matching %q", query))
	if len(results) == 0 {
		doc.PlainText("No match.")
		return doc.String()
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Symbol, r.Name, r.Exchange, r.Type})
	}

	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Name", "Exchange", "Type"},
		Rows:   rows,
	})

	return doc.String()
}
