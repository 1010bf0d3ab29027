package pricebook

import (
	"github.com/etnz/pricebook/date"
)

// Comparison is the price of one item on two dates.
type Comparison struct {
	Item   string
	Unit   string
	From   date.Date
	To     date.Date
	StartA float64
	EndA   float64
	StartB float64
	EndB   float64
}

// Change returns the relative change on channel ch.
func (c Comparison) Change(ch Channel) Change {
	if ch == ChannelB {
		return NewChange(c.StartB, c.EndB)
	}
	return NewChange(c.StartA, c.EndA)
}

// Compare compares the items recorded on start with the same items on end.
//
// A zero end is the most recent date of the store. Items are listed in
// store order of the start date; an item without a record on end is skipped.
// When an item has several records on a date, the first in store order is
// used. The result is empty, not an error, when nothing matches.
func (l *Ledger) Compare(start, end date.Date) ([]Comparison, error) {
	records, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	if end.IsZero() {
		end = maxDate(records)
	}

	// first record of each item on end.
	ends := make(map[string]PriceRecord)
	for _, r := range records {
		if r.Date != end {
			continue
		}
		if _, exists := ends[r.Item]; !exists {
			ends[r.Item] = r
		}
	}

	result := make([]Comparison, 0)
	for _, s := range records {
		if s.Date != start {
			continue
		}
		e, ok := ends[s.Item]
		if !ok {
			continue
		}
		result = append(result, Comparison{
			Item:   s.Item,
			Unit:   s.Unit,
			From:   start,
			To:     end,
			StartA: s.PriceA,
			EndA:   e.PriceA,
			StartB: s.PriceB,
			EndB:   e.PriceB,
		})
	}
	return result, nil
}
