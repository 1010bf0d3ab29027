package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/pricebook"
	md "github.com/nao1215/markdown"
)

func orderTable(lines []pricebook.OrderLine) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{pricebook.ColItem, pricebook.ColQuantity, pricebook.ColUnit, pricebook.ColUnitPrice, pricebook.ColSubtotal},
		Rows:      [][]string{},
	}
	for _, l := range lines {
		table.Rows = append(table.Rows, []string{
			l.Item,
			l.Quantity.String(),
			l.Unit,
			l.UnitPrice.StringFixed(2),
			pricebook.M(l.Subtotal).String(),
		})
	}
	return table
}

// QuoteMarkdown renders an order priced against the latest prices.
func QuoteMarkdown(q *pricebook.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if q.PriceDate.IsZero() {
		doc.H1("Order")
	} else {
		doc.H1(fmt.Sprintf("Order at the prices of %s", q.PriceDate))
	}
	if len(q.Lines) > 0 {
		doc.Table(orderTable(q.Lines))
		doc.PlainText(md.Bold("总计：" + pricebook.M(q.Total()).String()))
	}
	if len(q.Missing) > 0 {
		doc.PlainText("No price for: " + strings.Join(q.Missing, ", "))
	}
	return doc.String()
}

// OrderMarkdown renders a saved order.
func OrderMarkdown(o *pricebook.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Order of %s", o.OrderedAt.Format(pricebook.TimestampFormat)))
	doc.Table(orderTable(o.Lines))
	doc.PlainText(md.Bold("总计：" + pricebook.M(o.Total()).String()))
	return doc.String()
}

// LastOrderMarkdown renders the items of the most recent order.
func LastOrderMarkdown(items []pricebook.OrderItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Last Order")
	table := md.TableSet{
		Alignment: columns(2),
		Header:    []string{pricebook.ColItem, pricebook.ColQuantity},
		Rows:      [][]string{},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{it.Item, it.Quantity.String()})
	}
	doc.Table(table)
	return doc.String()
}
