package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/date"
)

func checkContains(t *testing.T, doc string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(doc, w) {
			t.Errorf("document does not contain %q:\n%s", w, doc)
		}
	}
}

func TestLatestMarkdown(t *testing.T) {
	doc := LatestMarkdown([]pricebook.PriceRecord{
		{Item: "白菜", Unit: "斤", PriceA: 3.5, PriceB: 4, Date: date.New(2024, 1, 8)},
	})
	checkContains(t, doc, "# Latest Prices on 2024-01-08", pricebook.ColPriceA, "白菜", "3.5")

	checkContains(t, LatestMarkdown(nil), "No price has been imported yet.")
}

func TestHistoryMarkdown(t *testing.T) {
	doc := HistoryMarkdown("白菜", []pricebook.PriceRecord{
		{Item: "白菜", Unit: "斤", PriceA: 4, PriceB: 4.4, Date: date.New(2024, 1, 8), UploadedAt: time.Date(2024, 1, 8, 9, 1, 0, 0, time.Local)},
		{Item: "白菜", Unit: "斤", PriceA: 3.5, PriceB: 4, Date: date.New(2024, 1, 1)},
	})
	checkContains(t, doc, "# History for 白菜", "2024-01-08 09:01:00", "2024-01-01", "4.4")
}

func TestDatesMarkdown(t *testing.T) {
	doc := DatesMarkdown([]date.Date{date.New(2024, 1, 8), date.New(2024, 1, 1)})
	checkContains(t, doc, "2024-01-08", "2024-01-01")
	checkContains(t, DatesMarkdown(nil), "No price")
}

func TestComparisonMarkdown(t *testing.T) {
	doc := ComparisonMarkdown([]pricebook.Comparison{{
		Item: "Cabbage", Unit: "kg",
		From: date.New(2024, 1, 1), To: date.New(2024, 1, 8),
		StartA: 3.5, EndA: 4, StartB: 0, EndB: 4.4,
	}})
	checkContains(t, doc, "2024-01-01 → 2024-01-08", "Cabbage", "+14.3%", "0%")
	checkContains(t, ComparisonMarkdown(nil), "No item")
}

func TestTrendMarkdown(t *testing.T) {
	doc := TrendMarkdown(&pricebook.Trend{
		Item: "白菜", Unit: "斤",
		Points: []pricebook.TrendPoint{{Date: date.New(2024, 1, 8), PriceA: 4, PriceB: 4.4}},
		MaxA:   4, MinA: 3.5, MeanA: 3.75,
		MaxB: 4.4, MinB: 4, MeanB: 4.2,
	})
	checkContains(t, doc, "# Price Trend for 白菜 (斤)", "3.75", "4.20", pricebook.ChannelB.Label())
}

func TestAlertsMarkdown(t *testing.T) {
	alerts := []pricebook.Alert{{
		Item: "白菜", Channel: pricebook.ChannelA, Old: 3.5, New: 4,
		Change: pricebook.NewChange(3.5, 4),
		Range:  date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 8)),
	}}
	checkContains(t, AlertsMarkdown(alerts, 0.1), "白菜", "菜篮子", "**+14.3%**", "2024-01-01 → 2024-01-08")
	checkContains(t, AlertsMarkdown(nil, 0.1), "No price changed by 10% or more.")
}

func TestOrderMarkdown(t *testing.T) {
	lines := []pricebook.OrderLine{
		pricebook.NewOrderLine("白菜", "斤", decimal.NewFromInt(10), decimal.RequireFromString("4.4")),
	}
	q := &pricebook.Quote{PriceDate: date.New(2024, 1, 8), Lines: lines, Missing: []string{"牛肉"}}
	checkContains(t, QuoteMarkdown(q), "2024-01-08", "4.40", "44.00", "总计", "No price for: 牛肉")

	o := &pricebook.Order{OrderedAt: time.Date(2024, 1, 8, 10, 0, 0, 0, time.Local), Lines: lines}
	checkContains(t, OrderMarkdown(o), "2024-01-08 10:00:00", "44.00")

	items := []pricebook.OrderItem{{Item: "白菜", Quantity: decimal.NewFromInt(10)}}
	checkContains(t, LastOrderMarkdown(items), "# Last Order", "白菜", "10")
}
