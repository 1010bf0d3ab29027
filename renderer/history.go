package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/date"
	md "github.com/nao1215/markdown"
)

// LatestMarkdown renders the latest price snapshot.
func LatestMarkdown(records []pricebook.PriceRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(records) == 0 {
		doc.H1("Latest Prices")
		doc.PlainText("No price has been imported yet.")
		return doc.String()
	}
	doc.H1(fmt.Sprintf("Latest Prices on %s", records[0].Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{pricebook.ColItem, pricebook.ColUnit, pricebook.ColPriceA, pricebook.ColPriceB},
		Rows:      [][]string{},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{r.Item, r.Unit, price(r.PriceA), price(r.PriceB)})
	}
	doc.Table(table)
	return doc.String()
}

// HistoryMarkdown renders every record of an item, including re-uploads.
func HistoryMarkdown(item string, records []pricebook.PriceRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", item))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{pricebook.ColDate, pricebook.ColUnit, pricebook.ColPriceA, pricebook.ColPriceB, pricebook.ColUploadedAt},
		Rows:      [][]string{},
	}
	for _, r := range records {
		uploaded := ""
		if !r.UploadedAt.IsZero() {
			uploaded = r.UploadedAt.Format(pricebook.TimestampFormat)
		}
		table.Rows = append(table.Rows, []string{r.Date.String(), r.Unit, price(r.PriceA), price(r.PriceB), uploaded})
	}
	doc.Table(table)
	return doc.String()
}

// DatesMarkdown renders the list of dates with prices.
func DatesMarkdown(dates []date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Price Dates")
	if len(dates) == 0 {
		doc.PlainText("No price has been imported yet.")
		return doc.String()
	}
	items := make([]string, 0, len(dates))
	for _, d := range dates {
		items = append(items, d.String())
	}
	doc.BulletList(items...)
	return doc.String()
}
