package pricebook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency of every amount in the ledger.
const Currency = money.CNY

// Money is an exact amount in Currency.
type Money struct {
	value decimal.Decimal
}

// M returns the amount as Money.
func M(value decimal.Decimal) Money { return Money{value: value} }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the amount formatted for its currency, "12.50 元".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}
