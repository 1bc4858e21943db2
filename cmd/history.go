package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dca/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	rangeFlags
	symbol string
	ma     int
	tail   int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the daily price history of a symbol" }
func (*historyCmd) Usage() string {
	return `dcas history -symbol <ticker> [-start <date> | -period <code>] [-ma <window>] [-tail <n>]

  Displays the closing price and volume for each trading date, with an
  optional simple moving average column.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol to display (e.g. ^GSPC).")
	f.IntVar(&c.ma, "ma", 0, "Simple moving average window in trading days, 0 to disable.")
	f.IntVar(&c.tail, "tail", 20, "Number of trailing rows to display, 0 for all.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required")
		return subcommands.ExitUsageError
	}

	series, err := c.fetch(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", c.symbol, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(series, c.ma, c.tail))

	return subcommands.ExitSuccess
}
