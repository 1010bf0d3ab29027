package pricebook

import (
	"fmt"

	"github.com/etnz/pricebook/date"
)

// Alert reports a price change on a channel between two dates.
type Alert struct {
	Item    string
	Unit    string
	Channel Channel
	Old     float64
	New     float64
	Change  Change
	Range   date.Range
}

// Label returns the supplier label of the alert channel.
func (a Alert) Label() string { return a.Channel.Label() }

func (a Alert) String() string {
	return fmt.Sprintf("%s %s: %s -> %s (%s, %s)", a.Item, a.Label(), formatPrice(a.Old), formatPrice(a.New), a.Change, a.Range)
}

// CheckPriceChanges compares a batch with the most recent date of history
// strictly before the batch date, which is the date of its first record.
//
// An alert is raised for each item and channel whose change reaches
// threshold in magnitude. A history of at most one record, or without a
// prior date, raises nothing. A channel whose old price is zero is skipped.
func CheckPriceChanges(history, batch []PriceRecord, threshold float64) []Alert {
	if len(history) <= 1 || len(batch) == 0 {
		return nil
	}
	day := batch[0].Date

	var prior date.Date
	for _, r := range history {
		if r.Date.Before(day) && r.Date.After(prior) {
			prior = r.Date
		}
	}
	if prior.IsZero() {
		return nil
	}

	// first record of each item on the prior date.
	old := make(map[string]PriceRecord)
	for _, r := range history {
		if r.Date != prior {
			continue
		}
		if _, exists := old[r.Item]; !exists {
			old[r.Item] = r
		}
	}

	var alerts []Alert
	for _, r := range batch {
		o, ok := old[r.Item]
		if !ok {
			continue
		}
		for _, c := range Channels {
			change := NewChange(o.Price(c), r.Price(c))
			if !change.Exceeds(threshold) {
				continue
			}
			alerts = append(alerts, Alert{
				Item:    r.Item,
				Unit:    r.Unit,
				Channel: c,
				Old:     o.Price(c),
				New:     r.Price(c),
				Change:  change,
				Range:   date.NewRange(prior, day),
			})
		}
	}
	return alerts
}

// PriceAlerts checks a batch against the stored history, using the ledger
// threshold.
func (l *Ledger) PriceAlerts(batch []PriceRecord) ([]Alert, error) {
	history, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	return CheckPriceChanges(history, batch, l.Threshold), nil
}

// AlertsOn checks the records of day against the previous stored date. A
// zero day is the most recent date of the store.
func (l *Ledger) AlertsOn(day date.Date) ([]Alert, error) {
	history, err := l.prices.LoadPrices()
	if err != nil {
		return nil, err
	}
	if day.IsZero() {
		day = maxDate(history)
	}
	var batch []PriceRecord
	for _, r := range history {
		if r.Date == day {
			batch = append(batch, r)
		}
	}
	return CheckPriceChanges(history, batch, l.Threshold), nil
}
