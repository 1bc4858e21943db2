package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/dca"
	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	rangeFlags
	symbol   string
	lump     float64
	monthly  float64
	riskFree float64
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "compare lump-sum, monthly and combined contribution strategies"
}
func (*compareCmd) Usage() string {
	return `dcas compare -symbol <ticker> [-start <date> | -period <code>] [-lump <amount>] [-monthly <amount>]

  Fetches the price history, simulates a one-time lump-sum investment, a
  monthly contribution plan, and both combined, then displays their
  performance side by side.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to analyze (e.g. AAPL).")
	f.Float64Var(&c.lump, "lump", 1000, "One-time investment amount on the start date.")
	f.Float64Var(&c.monthly, "monthly", 100, "Recurring contribution amount, first of every month.")
	f.Float64Var(&c.riskFree, "risk-free", dca.DefaultRiskFreeRate, "Annual risk-free rate for the Sharpe ratio, as a fraction.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required")
		return subcommands.ExitUsageError
	}

	series, err := c.fetch(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}

	start := series.First().Date
	end := series.Last().Date

	type strategy struct {
		name     string
		schedule dca.Schedule
		err      error
	}

	strategies := make([]strategy, 0, 3)
	if c.lump > 0 {
		s, err := dca.LumpSumOnly(start, amount(c.lump))
		strategies = append(strategies, strategy{"lump sum", s, err})
	}
	if c.monthly > 0 {
		s, err := dca.MonthlyOnly(start, amount(c.monthly), end)
		strategies = append(strategies, strategy{"monthly", s, err})
	}
	if c.lump > 0 && c.monthly > 0 {
		s, err := dca.Combined(start, amount(c.lump), amount(c.monthly), end)
		strategies = append(strategies, strategy{"combined", s, err})
	}
	if len(strategies) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to simulate, both -lump and -monthly are zero")
		return subcommands.ExitUsageError
	}

	var b strings.Builder
	summaries := make([]*dca.Summary, 0, len(strategies))
	var anomalies []dca.ScheduleAnomaly
	for _, st := range strategies {
		if st.err != nil {
			fmt.Fprintf(os.Stderr, "Error building %s schedule: %v\n", st.name, st.err)
			return subcommands.ExitFailure
		}
		portfolio, anom, err := dca.Accumulate(series, st.schedule, *windowFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error simulating %s strategy: %v\n", st.name, err)
			return subcommands.ExitFailure
		}
		summary, err := dca.Summarize(portfolio, c.riskFree)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error summarizing %s strategy: %v\n", st.name, err)
			return subcommands.ExitFailure
		}
		summary.Strategy = st.name
		summaries = append(summaries, summary)
		if st.name == "combined" || len(strategies) == 1 {
			anomalies = anom
		}
	}

	b.WriteString(renderer.ComparisonMarkdown(summaries))
	b.WriteString(renderer.AnomaliesMarkdown(anomalies))

	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
