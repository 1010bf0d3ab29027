package pricebook

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/etnz/pricebook/date"
)

// DefaultThreshold is the relative price change that raises an alert.
const DefaultThreshold = 0.10

// Ledger owns the price history and the order history.
//
// A Ledger keeps nothing in memory: every operation loads its store and
// writes it back. Mutating operations are serialized within the process.
type Ledger struct {
	prices PriceStore
	orders OrderStore

	// Threshold is the magnitude of change, as a ratio, that raises an alert.
	Threshold float64
	// Now is the ledger clock, time.Now when nil.
	Now func() time.Time

	mu sync.Mutex
}

// NewLedger returns a ledger over the two stores.
func NewLedger(prices PriceStore, orders OrderStore) *Ledger {
	return &Ledger{
		prices:    prices,
		orders:    orders,
		Threshold: DefaultThreshold,
	}
}

// now returns the ledger time, to the second as it is stored.
func (l *Ledger) now() time.Time {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return now().Truncate(time.Second)
}

// Batch is the set of records introduced by one import.
type Batch struct {
	Records    []PriceRecord
	UploadedAt time.Time
}

// Dates returns the dates covered by the batch, most recent first.
func (b *Batch) Dates() []date.Date { return distinctDates(b.Records) }

// String returns a one line summary of the import.
func (b *Batch) String() string {
	var days []string
	for _, d := range b.Dates() {
		days = append(days, d.String())
	}
	return fmt.Sprintf("imported %d records for %s at %s", len(b.Records), strings.Join(days, ", "), formatTimestamp(b.UploadedAt))
}

// Import appends the rows of t to the price history.
//
// The table is validated first (see Table.PriceBatch): on error nothing is
// written. Existing rows are never removed nor deduplicated, the combined
// history is written back most recent first.
func (l *Ledger) Import(t *Table) (*Batch, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	batch, _, err := l.importTable(t)
	return batch, err
}

// ImportAndCheck imports t like Import, and checks every date of the new
// batch against the history as it was before the import.
func (l *Ledger) ImportAndCheck(t *Table) (*Batch, []Alert, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	batch, history, err := l.importTable(t)
	if err != nil {
		return nil, nil, err
	}
	var alerts []Alert
	for _, day := range batch.Dates() {
		records := slices.DeleteFunc(slices.Clone(batch.Records), func(r PriceRecord) bool { return r.Date != day })
		alerts = append(alerts, CheckPriceChanges(history, records, l.Threshold)...)
	}
	return batch, alerts, nil
}

// importTable does the work of Import and returns the history found before.
func (l *Ledger) importTable(t *Table) (*Batch, []PriceRecord, error) {
	at := l.now()
	records, err := t.PriceBatch(at)
	if err != nil {
		return nil, nil, err
	}

	history, err := l.prices.LoadPrices()
	if err != nil {
		return nil, nil, err
	}
	combined := make([]PriceRecord, 0, len(history)+len(records))
	combined = append(combined, history...)
	combined = append(combined, records...)
	sortByRecency(combined)

	if err := l.prices.SavePrices(combined); err != nil {
		return nil, nil, err
	}
	return &Batch{Records: records, UploadedAt: at}, history, nil
}

// Clear empties the price history. The store keeps its header.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.prices.SavePrices(nil)
}
