package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/renderer"
)

type orderCmd struct {
	file string
	save bool
	xlsx string
}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "price an order with the latest prices" }
func (*orderCmd) Usage() string {
	return `pbk order [-f <file>] [-save] [-xlsx <file>] <item>=<quantity>[@<price>[/<unit>]]...

  Prices the items with the latest 康瑞达 prices. A custom price and unit
  may follow the quantity. Items can also be read from a sheet (-f) with the
  columns 品种 and 数量, and optionally 单价 and 单位.

Usage Examples:
# Price 10 斤 of 白菜 and 3 块 of 豆腐 at 2.5 each.
$ pbk order 白菜=10 豆腐=3@2.5/块

# Save the order and write it as a workbook.
$ pbk order -save -xlsx order.xlsx 白菜=10
`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "sheet with the items to order")
	f.BoolVar(&c.save, "save", false, "append the order to the order history")
	f.StringVar(&c.xlsx, "xlsx", "", "write the order as an .xlsx workbook")
}

func (c *orderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var requests []pricebook.OrderRequest
	if c.file != "" {
		reqs, err := readOrderRequests(c.file)
		if err != nil {
			return fail("cannot read %s: %v", c.file, err)
		}
		requests = append(requests, reqs...)
	}
	for _, arg := range f.Args() {
		req, err := pricebook.ParseOrderRequest(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		requests = append(requests, req)
	}
	if len(requests) == 0 {
		fmt.Fprintln(os.Stderr, "order requires at least one item")
		return subcommands.ExitUsageError
	}

	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	quote, err := l.QuoteOrder(requests)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.QuoteMarkdown(quote))
	if len(quote.Lines) == 0 {
		return fail("%v", pricebook.ErrEmptyOrder)
	}

	if c.xlsx != "" {
		var buf bytes.Buffer
		if err := pricebook.ExportOrder(&buf, quote); err != nil {
			return fail("cannot export the order: %v", err)
		}
		if err := os.WriteFile(c.xlsx, buf.Bytes(), 0644); err != nil {
			return fail("cannot write %s: %v", c.xlsx, err)
		}
		fmt.Fprintf(os.Stderr, "order written to %s\n", c.xlsx)
	}

	if c.save {
		order, err := l.SaveOrder(quote.Lines, quote.Total())
		if err != nil {
			return fail("cannot save the order: %v", err)
		}
		fmt.Fprintf(os.Stderr, "order of %s saved\n", order.OrderedAt.Format(pricebook.TimestampFormat))
	}
	return subcommands.ExitSuccess
}

func readOrderRequests(name string) ([]pricebook.OrderRequest, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := pricebook.ReadTable(name, f)
	if err != nil {
		return nil, err
	}
	return pricebook.OrderRequests(table)
}

type lastOrderCmd struct{}

func (*lastOrderCmd) Name() string     { return "last-order" }
func (*lastOrderCmd) Synopsis() string { return "recall the items of the last saved order" }
func (*lastOrderCmd) Usage() string {
	return `pbk last-order

  Displays the items and quantities of the most recent saved order, and the
  matching order arguments to repeat it.
`
}

func (*lastOrderCmd) SetFlags(f *flag.FlagSet) {}

func (*lastOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, release, err := openLedger()
	if err != nil {
		return fail("%v", err)
	}
	defer release()

	items, err := l.LastOrder()
	if errors.Is(err, pricebook.ErrNoData) {
		fmt.Fprintln(os.Stderr, "no order has been saved yet")
		return subcommands.ExitSuccess
	}
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.LastOrderMarkdown(items))

	args := make([]string, 0, len(items))
	for _, it := range items {
		args = append(args, it.Item+"="+it.Quantity.String())
	}
	fmt.Fprintf(os.Stderr, "pbk order %s\n", strings.Join(args, " "))
	return subcommands.ExitSuccess
}
