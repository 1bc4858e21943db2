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

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	rangeFlags
	symbol   string
	amount   float64
	lump     float64
	tail     int
	riskFree float64
}

func (*monthlyCmd) Name() string { return "monthly" }
func (*monthlyCmd) Synopsis() string {
	return "simulate a monthly contribution plan (dollar-cost averaging)"
}
func (*monthlyCmd) Usage() string {
	return `dcas monthly -symbol <ticker> [-start <date> | -period <code>] [-amount <amount>] [-lump <amount>]

  Simulates contributing a fixed amount on the first trading day of every
  month, optionally seeded with an initial lump sum, and displays the
  resulting performance and trajectory.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to analyze (e.g. AAPL).")
	f.Float64Var(&c.amount, "amount", 100, "Recurring contribution amount, first of every month.")
	f.Float64Var(&c.lump, "lump", 0, "Optional initial lump sum on the start date.")
	f.IntVar(&c.tail, "tail", 10, "Number of trailing trajectory rows to display, 0 for all.")
	f.Float64Var(&c.riskFree, "risk-free", dca.DefaultRiskFreeRate, "Annual risk-free rate for the Sharpe ratio, as a fraction.")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var schedule dca.Schedule
	strategy := "monthly"
	if c.lump > 0 {
		schedule, err = dca.Combined(start, amount(c.lump), amount(c.amount), end)
		strategy = "combined"
	} else {
		schedule, err = dca.MonthlyOnly(start, amount(c.amount), end)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	portfolio, anomalies, err := dca.Accumulate(series, schedule, *windowFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simulating: %v\n", err)
		return subcommands.ExitFailure
	}
	if portfolio.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No contribution could be placed on a trading date.")
		return subcommands.ExitFailure
	}

	summary, err := dca.Summarize(portfolio, c.riskFree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing: %v\n", err)
		return subcommands.ExitFailure
	}
	summary.Strategy = strategy

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(summary))
	b.WriteString(renderer.AnomaliesMarkdown(anomalies))
	b.WriteString(renderer.TrajectoryMarkdown(portfolio, c.tail))

	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
