package pricebook

import (
	"slices"

	"github.com/etnz/pricebook/date"
)

// Latest returns the records of the most recent date, sorted by item.
//
// Every record of that date is returned, an item uploaded twice for the same
// day appears twice. It returns ErrNoData when the store holds no dated
// record.
func (l *Ledger) Latest() ([]PriceRecord, error) {
	records, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	last := maxDate(records)
	if last.IsZero() {
		return nil, ErrNoData
	}
	latest := slices.DeleteFunc(records, func(r PriceRecord) bool { return r.Date != last })
	slices.SortStableFunc(latest, byItem)
	return latest, nil
}

// History returns every record of item, most recent first.
//
// It returns ErrNotFound when the item has never been recorded.
func (l *Ledger) History(item string) ([]PriceRecord, error) {
	records, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	history := slices.DeleteFunc(records, func(r PriceRecord) bool { return r.Item != item })
	if len(history) == 0 {
		return nil, ErrNotFound
	}
	sortByRecency(history)
	return history, nil
}

// Dates returns the distinct dates of the store, most recent first.
// An empty store has no dates, this is not an error.
func (l *Ledger) Dates() ([]date.Date, error) {
	records, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	return distinctDates(records), nil
}

// Items returns the distinct item names of the store, sorted.
func (l *Ledger) Items() ([]string, error) {
	records, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(records))
	for _, r := range records {
		if r.Item != "" {
			items = append(items, r.Item)
		}
	}
	slices.Sort(items)
	return slices.Compact(items), nil
}

// On returns the records of day, in store order.
func (l *Ledger) On(day date.Date) ([]PriceRecord, error) {
	records, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(records, func(r PriceRecord) bool { return r.Date != day }), nil
}
