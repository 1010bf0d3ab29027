package pricebook

import (
	"sync"
	"testing"

	"github.com/etnz/pricebook/date"
)

func TestConcurrentImports(t *testing.T) {
	store := NewMemoryStore(PriceRecord{Item: "白菜", Unit: "斤", PriceA: 3, PriceB: 3, Date: date.New(2024, 1, 1)})
	l := NewLedger(store, store)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Import(priceTable([]string{"白菜", "斤", "3.5", "4", "2024-01-08"})); err != nil {
				t.Errorf("Import() error = %v", err)
			}
		}()
	}
	wg.Wait()

	history, err := l.History("白菜")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != n+1 {
		t.Errorf("History() has %d records, want %d: an import was lost", len(history), n+1)
	}
	if history[len(history)-1].Date != date.New(2024, 1, 1) {
		t.Errorf("History() oldest record = %+v, want the seeded one", history[len(history)-1])
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	store := NewMemoryStore(PriceRecord{Item: "白菜"})
	got, _ := store.LoadPrices()
	got[0].Item = "土豆"
	again, _ := store.LoadPrices()
	if again[0].Item != "白菜" {
		t.Errorf("LoadPrices() shares its slice with the store")
	}
}
