package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/pricebook"
	md "github.com/nao1215/markdown"
)

// AlertsMarkdown renders price change alerts, or a single line when there
// is none.
func AlertsMarkdown(alerts []pricebook.Alert, threshold float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Price Alerts")
	if len(alerts) == 0 {
		doc.PlainText(fmt.Sprintf("No price changed by %.0f%% or more.", threshold*100))
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{pricebook.ColItem, "渠道", "Old", "New", "Change", "Dates"},
		Rows:      [][]string{},
	}
	for _, a := range alerts {
		table.Rows = append(table.Rows, []string{a.Item, a.Label(), price(a.Old), price(a.New), md.Bold(a.Change.String()), a.Range.String()})
	}
	doc.Table(table)
	return doc.String()
}
