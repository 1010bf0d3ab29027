package pricebook

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/etnz/pricebook/date"
)

// TrendPoint is the two prices of an item on a date.
type TrendPoint struct {
	Date   date.Date `json:"date"`
	PriceA float64   `json:"price_a"`
	PriceB float64   `json:"price_b"`
}

// Trend is the full price history of an item with its statistics.
type Trend struct {
	Item   string
	Unit   string
	Points []TrendPoint // most recent first

	MaxA, MinA, MeanA float64
	MaxB, MinB, MeanB float64
}

// Trend returns the price history of item and the maximum, minimum and mean
// of each channel, rounded to 2 decimals.
//
// It returns ErrNotFound when the item has never been recorded.
func (l *Ledger) Trend(item string) (*Trend, error) {
	records, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	records = slices.DeleteFunc(records, func(r PriceRecord) bool { return r.Item != item })
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	slices.SortStableFunc(records, func(a, b PriceRecord) int { return b.Date.Compare(a.Date) })

	t := &Trend{
		Item:   item,
		Unit:   records[0].Unit,
		Points: make([]TrendPoint, 0, len(records)),
	}
	a := make([]float64, 0, len(records))
	b := make([]float64, 0, len(records))
	for _, r := range records {
		t.Points = append(t.Points, TrendPoint{Date: r.Date, PriceA: r.PriceA, PriceB: r.PriceB})
		a = append(a, r.PriceA)
		b = append(b, r.PriceB)
	}
	t.MaxA, t.MinA, t.MeanA = stats(a)
	t.MaxB, t.MinB, t.MeanB = stats(b)
	return t, nil
}

// stats returns the rounded max, min and mean of a non empty series.
func stats(values []float64) (hi, lo, mean float64) {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(values))))

	hi = round2(slices.Max(values))
	lo = round2(slices.Min(values))
	// rounding the mean on its own may cross a rounded bound.
	mean = min(max(round2(avg.InexactFloat64()), lo), hi)
	return hi, lo, mean
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
