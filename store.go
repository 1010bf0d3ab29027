package pricebook

import (
	"slices"
	"sync"
)

// PriceStore persists the price ledger. The ledger reads the whole history
// and writes it back in full.
type PriceStore interface {
	// LoadPrices returns every record, in store order. An absent store is empty.
	LoadPrices() ([]PriceRecord, error)
	// SavePrices replaces the store content with records.
	SavePrices(records []PriceRecord) error
}

// OrderStore persists the order ledger, which only grows.
type OrderStore interface {
	// LoadOrders returns every record, in store order. An absent store is empty.
	LoadOrders() ([]OrderRecord, error)
	// AppendOrders adds records at the end of the store.
	AppendOrders(records []OrderRecord) error
}

// MemoryStore is a PriceStore and an OrderStore that lives in memory.
type MemoryStore struct {
	mu     sync.Mutex
	prices []PriceRecord
	orders []OrderRecord
}

// NewMemoryStore returns a store holding a copy of prices.
func NewMemoryStore(prices ...PriceRecord) *MemoryStore {
	return &MemoryStore{prices: slices.Clone(prices)}
}

func (m *MemoryStore) LoadPrices() ([]PriceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.prices), nil
}

func (m *MemoryStore) SavePrices(records []PriceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices = slices.Clone(records)
	return nil
}

func (m *MemoryStore) LoadOrders() ([]OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.orders), nil
}

func (m *MemoryStore) AppendOrders(records []OrderRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, records...)
	return nil
}

var (
	_ PriceStore = (*MemoryStore)(nil)
	_ OrderStore = (*MemoryStore)(nil)
	_ PriceStore = (*FileStore)(nil)
	_ OrderStore = (*FileStore)(nil)
)
