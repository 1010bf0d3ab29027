package pricebook

import (
	"log"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a confirmed order as stored in the order history.
type Order struct {
	OrderedAt time.Time
	Lines     []OrderLine
}

// Total returns the sum of the line subtotals.
func (o *Order) Total() decimal.Decimal { return total(o.Lines) }

func total(lines []OrderLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Subtotal)
	}
	return sum
}

// SaveOrder appends the lines to the order history, all stamped with the
// same confirmation time.
//
// total is the amount shown to the user when the order was confirmed; a
// mismatch with the lines is logged, the lines are stored as they are.
func (l *Ledger) SaveOrder(lines []OrderLine, total decimal.Decimal) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	o := &Order{OrderedAt: l.now(), Lines: slices.Clone(lines)}
	if sum := o.Total(); !sum.Equal(total) {
		log.Printf("order total %s differs from the sum of its lines %s, lines are kept", total, sum)
	}

	records := make([]OrderRecord, 0, len(lines))
	for _, line := range o.Lines {
		records = append(records, OrderRecord{OrderedAt: o.OrderedAt, OrderLine: line})
	}
	if err := l.orders.AppendOrders(records); err != nil {
		return nil, err
	}
	return o, nil
}

// LastOrder returns the item and quantity of every line of the most recent
// order. It returns ErrNoData when no order has been saved.
func (l *Ledger) LastOrder() ([]OrderItem, error) {
	records, err := l.orders.LoadOrders()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	var last time.Time
	for _, r := range records {
		if r.OrderedAt.After(last) {
			last = r.OrderedAt
		}
	}
	var items []OrderItem
	for _, r := range records {
		if r.OrderedAt.Equal(last) {
			items = append(items, OrderItem{Item: r.Item, Quantity: r.Quantity})
		}
	}
	return items, nil
}
