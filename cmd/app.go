// Package cmd implements the CLI application to analyze contribution
// strategies for a single security.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/dca"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&compareCmd{}, "analysis")
	c.Register(&lumpsumCmd{}, "analysis")
	c.Register(&monthlyCmd{}, "analysis")

	c.Register(&historyCmd{}, "market data")
	c.Register(&searchCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currencyFlag = flag.String("currency", "USD", "Currency of the contribution amounts (ISO 4217 code)")
var windowFlag = flag.Int("window", dca.DefaultResolveWindow, "Days after a scheduled date within which a substitute trading date is searched")

// rangeFlags are the date range flags shared by every command that fetches
// price history: either an explicit start/end pair or a relative period code.
type rangeFlags struct {
	start  string
	end    string
	period string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.start, "start", "", "Start date of the history. See the user manual for supported date formats.")
	f.StringVar(&r.end, "end", "0d", "End date of the history (defaults to today).")
	f.StringVar(&r.period, "period", "", "Relative period code ("+dca.Periods[0]+", "+dca.Periods[4]+", ...) instead of -start/-end.")
}

// fetch retrieves the price series selected by the flags.
func (r *rangeFlags) fetch(symbol string) (*dca.PriceSeries, error) {
	if r.period != "" {
		return dca.YahooDailyPeriod(symbol, r.period)
	}
	if r.start == "" {
		return nil, fmt.Errorf("either -start or -period is required")
	}
	start, err := dca.ParseDate(r.start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := dca.ParseDate(r.end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	return dca.YahooDaily(symbol, dca.NewRange(start, end))
}

// amount converts a float flag value into a Money in the shared currency.
func amount(value float64) dca.Money {
	return dca.M(value, *currencyFlag)
}
