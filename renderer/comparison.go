package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/pricebook"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders the prices of items on two dates and their
// change on both channels.
func ComparisonMarkdown(lines []pricebook.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(lines) == 0 {
		doc.H1("Price Comparison")
		doc.PlainText("No item has prices on both dates.")
		return doc.String()
	}
	doc.H1(fmt.Sprintf("Price Comparison %s → %s", lines[0].From, lines[0].To))

	table := md.TableSet{
		Alignment: columns(8),
		Header:    []string{pricebook.ColItem, pricebook.ColUnit},
		Rows:      [][]string{},
	}
	table.Alignment[1] = md.AlignLeft
	for _, c := range pricebook.Channels {
		table.Header = append(table.Header, c.Label()+" "+lines[0].From.String(), c.Label()+" "+lines[0].To.String(), c.Label()+" 变化")
	}
	for _, l := range lines {
		table.Rows = append(table.Rows, []string{
			l.Item,
			l.Unit,
			price(l.StartA), price(l.EndA), l.Change(pricebook.ChannelA).String(),
			price(l.StartB), price(l.EndB), l.Change(pricebook.ChannelB).String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
