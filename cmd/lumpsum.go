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

// lumpsumCmd holds the flags for the 'lumpsum' subcommand.
type lumpsumCmd struct {
	rangeFlags
	symbol   string
	amount   float64
	on       string
	tail     int
	riskFree float64
}

func (*lumpsumCmd) Name() string     { return "lumpsum" }
func (*lumpsumCmd) Synopsis() string { return "simulate a one-time lump-sum investment" }
func (*lumpsumCmd) Usage() string {
	return `dcas lumpsum -symbol <ticker> [-start <date> | -period <code>] [-amount <amount>] [-on <date>]

  Simulates investing a single amount on one date and holding, and displays
  the resulting performance and trajectory.
`
}

func (c *lumpsumCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to analyze (e.g. AAPL).")
	f.Float64Var(&c.amount, "amount", 1000, "One-time investment amount.")
	f.StringVar(&c.on, "on", "", "Contribution date (defaults to the first trading date of the history).")
	f.IntVar(&c.tail, "tail", 10, "Number of trailing trajectory rows to display, 0 for all.")
	f.Float64Var(&c.riskFree, "risk-free", dca.DefaultRiskFreeRate, "Annual risk-free rate for the Sharpe ratio, as a fraction.")
}

func (c *lumpsumCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required")
		return subcommands.ExitUsageError
	}

	series, err := c.fetch(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}

	on := series.First().Date
	if c.on != "" {
		if on, err = dca.ParseDate(c.on); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing contribution date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	schedule, err := dca.LumpSumOnly(on, amount(c.amount))
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
		fmt.Fprintf(os.Stderr, "No trading date near %s, nothing was invested.\n", on)
		return subcommands.ExitFailure
	}

	summary, err := dca.Summarize(portfolio, c.riskFree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing: %v\n", err)
		return subcommands.ExitFailure
	}
	summary.Strategy = "lump sum"

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(summary))
	b.WriteString(renderer.AnomaliesMarkdown(anomalies))
	b.WriteString(renderer.TrajectoryMarkdown(portfolio, c.tail))

	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
