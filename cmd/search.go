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

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the symbol directory for a ticker" }
func (*searchCmd) Usage() string {
	return `dcas search <query>

  Looks up ticker symbols matching a company name or partial symbol.

Usage Examples:
$ dcas search nvidia
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.Join(f.Args(), " ")
	if query == "" {
		fmt.Fprintln(os.Stderr, "Error: a search query is required")
		return subcommands.ExitUsageError
	}

	results, err := dca.YahooSearch(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching %q: %v\n", query, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SearchMarkdown(query, results))

	return subcommands.ExitSuccess
}
