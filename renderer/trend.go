package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/pricebook"
	md "github.com/nao1215/markdown"
)

// TrendMarkdown renders the statistics and the price points of an item.
func TrendMarkdown(t *pricebook.Trend) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Price Trend for %s (%s)", t.Item, t.Unit))

	doc.H2("Statistics")
	doc.Table(md.TableSet{
		Alignment: columns(4),
		Header:    []string{"", "Max", "Min", "Mean"},
		Rows: [][]string{
			{pricebook.ChannelA.Label(), stat(t.MaxA), stat(t.MinA), stat(t.MeanA)},
			{pricebook.ChannelB.Label(), stat(t.MaxB), stat(t.MinB), stat(t.MeanB)},
		},
	})

	doc.H2("Prices")
	table := md.TableSet{
		Alignment: columns(3),
		Header:    []string{pricebook.ColDate, pricebook.ColPriceA, pricebook.ColPriceB},
		Rows:      [][]string{},
	}
	for _, p := range t.Points {
		table.Rows = append(table.Rows, []string{p.Date.String(), price(p.PriceA), price(p.PriceB)})
	}
	doc.Table(table)
	return doc.String()
}
