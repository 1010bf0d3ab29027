package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/date"
	"github.com/etnz/pricebook/renderer"
)

type importCmd struct {
	alerts bool
	path   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "append a price sheet to the price history" }
func (*importCmd) Usage() string {
	return `pbk import [-alerts=false] [-path <jsonpath>] <file or url>

  Reads a price sheet (.xlsx, .csv or .json, local or over http) and appends
  its rows to the price history. The sheet must have the columns 品种, 单位,
  菜篮子价, 康瑞达价 and 日期; nothing is imported when a column is missing
  or a date cannot be read.

  The price changes that reach the alert threshold are listed afterwards.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.alerts, "alerts", true, "list the price alerts of the imported dates")
	f.StringVar(&c.path, "path", "", "JSONPath of the rows in a .json sheet, e.g. $.data.prices")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import requires exactly one file or url")
		return subcommands.ExitUsageError
	}
	src := f.Arg(0)

	table, err := c.read(ctx, src)
	if err != nil {
		return fail("cannot read %s: %v", src, err)
	}

	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	if !c.alerts {
		batch, err := l.Import(table)
		if err != nil {
			return fail("%v", err)
		}
		fmt.Fprintln(os.Stderr, batch)
		return subcommands.ExitSuccess
	}

	batch, alerts, err := l.ImportAndCheck(table)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintln(os.Stderr, batch)
	printMarkdown(renderer.AlertsMarkdown(alerts, l.Threshold))
	return subcommands.ExitSuccess
}

func (c *importCmd) read(ctx context.Context, src string) (*pricebook.Table, error) {
	if pricebook.IsURL(src) {
		return pricebook.FetchTable(ctx, src)
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if c.path != "" && filepath.Ext(src) == ".json" {
		return pricebook.ReadJSONTable(f, c.path)
	}
	return pricebook.ReadTable(src, f)
}

type latestCmd struct{}

func (*latestCmd) Name() string     { return "latest" }
func (*latestCmd) Synopsis() string { return "display the prices of the most recent date" }
func (*latestCmd) Usage() string {
	return `pbk latest

  Displays every price of the most recent date, sorted by item.
`
}

func (*latestCmd) SetFlags(f *flag.FlagSet) {}

func (*latestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	records, err := l.Latest()
	if err != nil && !errors.Is(err, pricebook.ErrNoData) {
		return fail("%v", err)
	}
	printMarkdown(renderer.LatestMarkdown(records))
	return subcommands.ExitSuccess
}

type datesCmd struct{}

func (*datesCmd) Name() string     { return "dates" }
func (*datesCmd) Synopsis() string { return "list the dates with prices" }
func (*datesCmd) Usage() string {
	return `pbk dates

  Lists the dates of the price history, most recent first.
`
}

func (*datesCmd) SetFlags(f *flag.FlagSet) {}

func (*datesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	dates, err := l.Dates()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.DatesMarkdown(dates))
	return subcommands.ExitSuccess
}

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display every price of an item" }
func (*historyCmd) Usage() string {
	return `pbk history <item>

  Displays every recorded price of an item, most recent first. An item
  uploaded twice for the same date is listed twice.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (*historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "history requires exactly one item")
		return subcommands.ExitUsageError
	}
	item := f.Arg(0)

	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	records, err := l.History(item)
	if err != nil {
		return fail("%s: %v", item, err)
	}
	printMarkdown(renderer.HistoryMarkdown(item, records))
	return subcommands.ExitSuccess
}

type compareCmd struct {
	start string
	end   string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the prices of two dates" }
func (*compareCmd) Usage() string {
	return `pbk compare -s <date> [-e <date>]

  Compares the prices of the items recorded on both dates. The end date
  defaults to the most recent date. A change from a zero price shows 0%.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "start date")
	f.StringVar(&c.end, "e", "", "end date (defaults to the most recent date)")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.start == "" {
		fmt.Fprintln(os.Stderr, "compare requires a start date (-s)")
		return subcommands.ExitUsageError
	}
	start, err := date.ParseLoose(c.start)
	if err != nil {
		return fail("invalid start date: %v", err)
	}
	var end date.Date
	if c.end != "" {
		if end, err = date.ParseLoose(c.end); err != nil {
			return fail("invalid end date: %v", err)
		}
	}

	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	lines, err := l.Compare(start, end)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.ComparisonMarkdown(lines))
	return subcommands.ExitSuccess
}

type trendCmd struct{}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the price trend of an item" }
func (*trendCmd) Usage() string {
	return `pbk trend <item>

  Displays the maximum, minimum and mean price of an item on both suppliers,
  and its prices over time.
`
}

func (*trendCmd) SetFlags(f *flag.FlagSet) {}

func (*trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "trend requires exactly one item")
		return subcommands.ExitUsageError
	}
	item := f.Arg(0)

	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	trend, err := l.Trend(item)
	if err != nil {
		return fail("%s: %v", item, err)
	}
	printMarkdown(renderer.TrendMarkdown(trend))
	return subcommands.ExitSuccess
}

type alertsCmd struct {
	day string
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "list the price changes above the threshold" }
func (*alertsCmd) Usage() string {
	return `pbk alerts [-d <date>]

  Lists the prices of a date that changed by at least the alert threshold
  (-threshold) since the previous date. The date defaults to the most
  recent one.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "date to check (defaults to the most recent date)")
}

func (c *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var day date.Date
	if c.day != "" {
		var err error
		if day, err = date.ParseLoose(c.day); err != nil {
			return fail("invalid date: %v", err)
		}
	}

	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	alerts, err := l.AlertsOn(day)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.AlertsMarkdown(alerts, l.Threshold))
	return subcommands.ExitSuccess
}

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "erase the price history" }
func (*clearCmd) Usage() string {
	return `pbk clear -y

  Erases every price of the history. The order history is kept.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "confirm the erasure")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "clear erases the whole price history, confirm with -y")
		return subcommands.ExitUsageError
	}
	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	if err := l.Clear(); err != nil {
		return fail("cannot clear the price history: %v", err)
	}
	fmt.Fprintln(os.Stderr, "price history cleared")
	return subcommands.ExitSuccess
}
